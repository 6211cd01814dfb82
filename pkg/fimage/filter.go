package fimage

import(
	"fmt"
	"math"

	"github.com/abworrall/panorama/pkg/pool"
)

// Convolve cross-correlates the image with the filter, centered on each
// pixel. If the filter has as many channels as the image, channel c of
// the filter is applied to channel c of the image; otherwise filter
// channel 0 is used for all of them. If preserve is false, the filtered
// channels are summed into a single channel.
func Convolve(im, filter Image, preserve bool) Image {
	ox, oy := filter.W/2, filter.H/2

	value := func(x, y, c int) float64 {
		fc := 0
		if filter.C == im.C { fc = c }
		sum := 0.0
		for fy:=0; fy<filter.H; fy++ {
			for fx:=0; fx<filter.W; fx++ {
				sum += im.Get(x-ox+fx, y-oy+fy, c) * filter.Get(fx, fy, fc)
			}
		}
		return sum
	}

	if !preserve {
		out := New(im.W, im.H, 1)
		pool.Run(im.H, func(y int) {
			for x:=0; x<im.W; x++ {
				sum := 0.0
				for c:=0; c<im.C; c++ {
					sum += value(x, y, c)
				}
				out.Set(x, y, 0, sum)
			}
		})
		return out
	}

	out := New(im.W, im.H, im.C)
	pool.Run(im.C * im.H, func(job int) {
		c, y := job / im.H, job % im.H
		for x:=0; x<im.W; x++ {
			out.Set(x, y, c, value(x, y, c))
		}
	})
	return out
}

func filterFromRows(rows ...[]float64) Image {
	f := New(len(rows[0]), len(rows), 1)
	for y, row := range rows {
		for x, v := range row {
			f.Set(x, y, 0, v)
		}
	}
	return f
}

func MakeBoxFilter(w int) Image {
	f := New(w, w, 1)
	for i := range f.Data {
		f.Data[i] = 1
	}
	L1Normalize(f)
	return f
}

// Sobel derivative filters
func GxFilter() Image { return filterFromRows([]float64{-1, 0, 1}, []float64{-2, 0, 2}, []float64{-1, 0, 1}) }
func GyFilter() Image { return filterFromRows([]float64{-1, -2, -1}, []float64{0, 0, 0}, []float64{1, 2, 1}) }

func HighpassFilter() Image { return filterFromRows([]float64{0, -1, 0}, []float64{-1, 4, -1}, []float64{0, -1, 0}) }
func SharpenFilter() Image  { return filterFromRows([]float64{0, -1, 0}, []float64{-1, 5, -1}, []float64{0, -1, 0}) }
func EmbossFilter() Image   { return filterFromRows([]float64{-2, -1, 0}, []float64{-1, 1, 1}, []float64{0, 1, 2}) }

// gaussianWidth is 6 sigma, bumped up to the next odd number.
func gaussianWidth(sigma float64) int {
	w := int(math.Ceil(6 * sigma))
	if w % 2 == 0 { w++ }
	return w
}

func gaussian1D(x, sigma float64) float64 {
	return math.Exp(-(x*x) / (2*sigma*sigma)) / math.Sqrt(2*math.Pi*sigma*sigma)
}

// MakeGaussianFilter is a normalized 2D gaussian kernel.
func MakeGaussianFilter(sigma float64) Image {
	w := gaussianWidth(sigma)
	f := New(w, w, 1)
	for y:=0; y<w; y++ {
		for x:=0; x<w; x++ {
			dx, dy := float64(x - w/2), float64(y - w/2)
			f.Set(x, y, 0, math.Exp(-(dx*dx + dy*dy) / (2*sigma*sigma)) / (2*math.Pi*sigma*sigma))
		}
	}
	L1Normalize(f)
	return f
}

// Make1DGaussian returns a single row filter; it is not normalized.
func Make1DGaussian(sigma float64) Image {
	w := gaussianWidth(sigma)
	f := New(w, 1, 1)
	for x:=0; x<w; x++ {
		f.Set(x, 0, 0, gaussian1D(float64(x - w/2), sigma))
	}
	return f
}

// SmoothSeparable blurs with a 1D gaussian, first along rows then along
// columns. Much cheaper than a 2D kernel.
func SmoothSeparable(im Image, sigma float64) Image {
	row := Make1DGaussian(sigma)
	col := Image{W:1, H:row.W, C:1, Data:row.Data}
	return Convolve(Convolve(im, row, true), col, true)
}

// L1Normalize scales the image in place so that its values sum to 1.
func L1Normalize(im Image) {
	sum := 0.0
	for _, v := range im.Data {
		sum += v
	}
	if sum == 0 { return }
	for i := range im.Data {
		im.Data[i] /= sum
	}
}

// FeatureNormalize rescales the image in place into [0,1]. Flat images
// become all zero.
func FeatureNormalize(im Image) {
	min, max := im.MinMax()
	for i, v := range im.Data {
		if max > min {
			im.Data[i] = (v - min) / (max - min)
		} else {
			im.Data[i] = 0
		}
	}
}

func sameShape(a, b Image) error {
	if a.W != b.W || a.H != b.H || a.C != b.C {
		return fmt.Errorf("image shapes differ: %s vs %s", a, b)
	}
	return nil
}

func AddImage(a, b Image) (Image, error) {
	if err := sameShape(a, b); err != nil { return Image{}, err }
	out := a.Copy()
	for i, v := range b.Data {
		out.Data[i] += v
	}
	return out, nil
}

func SubImage(a, b Image) (Image, error) {
	if err := sameShape(a, b); err != nil { return Image{}, err }
	out := a.Copy()
	for i, v := range b.Data {
		out.Data[i] -= v
	}
	return out, nil
}

// Sobel returns the gradient magnitude and direction (radians) images.
func Sobel(im Image) (Image, Image) {
	gx := Convolve(im, GxFilter(), false)
	gy := Convolve(im, GyFilter(), false)

	mag := New(im.W, im.H, 1)
	dir := New(im.W, im.H, 1)
	for i := range gx.Data {
		mag.Data[i] = math.Hypot(gx.Data[i], gy.Data[i])
		dir.Data[i] = math.Atan2(gy.Data[i], gx.Data[i])
	}
	return mag, dir
}

// ColorizeSobel renders gradient direction as hue, and magnitude as
// saturation and value.
func ColorizeSobel(im Image) Image {
	mag, dir := Sobel(im)
	FeatureNormalize(mag)

	out := New(im.W, im.H, 3)
	for y:=0; y<im.H; y++ {
		for x:=0; x<im.W; x++ {
			out.Set(x, y, 0, (dir.Get(x,y,0) + math.Pi) / (2 * math.Pi))
			out.Set(x, y, 1, mag.Get(x,y,0))
			out.Set(x, y, 2, mag.Get(x,y,0))
		}
	}
	HSVToRGB(out)
	return Convolve(out, MakeGaussianFilter(1), true)
}
