package fimage

// A small floating point image library. Images are
// stored channel-major, so that per-channel algorithms walk contiguous
// memory. Pixel reads outside the image are clamped to the nearest
// edge pixel; writes outside the image are ignored.

import(
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/mdouchement/hdr/hdrcolor"
)

type Image struct {
	W, H, C int
	Data    []float64 // len W*H*C, indexed by [c*W*H + y*W + x]
}

// New returns a zeroed image. Dimensions must be positive.
func New(w, h, c int) Image {
	if w <= 0 || h <= 0 || c <= 0 {
		panic(fmt.Sprintf("fimage.New: bad dimensions %dx%dx%d", w, h, c))
	}
	return Image{W:w, H:h, C:c, Data:make([]float64, w*h*c)}
}

func (im Image)String() string { return fmt.Sprintf("fimage[%dx%dx%d]", im.W, im.H, im.C) }

func (im Image)index(x, y, c int) int { return c*im.W*im.H + y*im.W + x }

func (im Image)InBounds(x, y, c int) bool {
	return x >= 0 && x < im.W && y >= 0 && y < im.H && c >= 0 && c < im.C
}

// Get clamps the coords into the image, so never fails.
func (im Image)Get(x, y, c int) float64 {
	if x < 0 { x = 0 } else if x >= im.W { x = im.W-1 }
	if y < 0 { y = 0 } else if y >= im.H { y = im.H-1 }
	if c < 0 { c = 0 } else if c >= im.C { c = im.C-1 }
	return im.Data[im.index(x, y, c)]
}

// Set is a no-op for coords outside the image.
func (im *Image)Set(x, y, c int, v float64) {
	if !im.InBounds(x, y, c) { return }
	im.Data[im.index(x, y, c)] = v
}

func (im Image)Copy() Image {
	out := Image{W:im.W, H:im.H, C:im.C, Data:make([]float64, len(im.Data))}
	copy(out.Data, im.Data)
	return out
}

// Channel returns a copy of a single channel, as a 1-channel image.
func (im Image)Channel(c int) Image {
	out := New(im.W, im.H, 1)
	copy(out.Data, im.Data[im.index(0, 0, c):im.index(0, 0, c+1)])
	return out
}

// MinMax returns the range of values, across all channels. Infinities
// are skipped; they are used to tag pixels, not as real values.
func (im Image)MinMax() (float64, float64) {
	min, max := 0.0, 0.0
	first := true
	for _, v := range im.Data {
		if math.IsInf(v, 0) || math.IsNaN(v) { continue }
		if first || v < min { min = v }
		if first || v > max { max = v }
		first = false
	}
	return min, max
}

// Implement image.Image, and hdr.Image. 1-channel images come out as gray.
func (im Image)ColorModel() color.Model       { return hdrcolor.RGBModel }
func (im Image)Bounds() image.Rectangle       { return image.Rect(0, 0, im.W, im.H) }
func (im Image)At(x, y int) color.Color       { return im.HDRAt(x,y) }
func (im Image)Size() int                     { return im.W * im.H }

func (im Image)HDRAt(x, y int) hdrcolor.Color {
	if im.C < 3 {
		v := im.Get(x, y, 0)
		return hdrcolor.RGB{R:v, G:v, B:v}
	}
	return hdrcolor.RGB{R:im.Get(x, y, 0), G:im.Get(x, y, 1), B:im.Get(x, y, 2)}
}
