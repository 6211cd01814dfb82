package fimage

import(
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBToGrayscale uses the usual luma weights. 1-channel images are
// copied; other channel counts are averaged.
func RGBToGrayscale(im Image) Image {
	if im.C == 1 {
		return im.Copy()
	}

	gray := New(im.W, im.H, 1)
	for y:=0; y<im.H; y++ {
		for x:=0; x<im.W; x++ {
			v := 0.0
			if im.C == 3 {
				v = 0.299*im.Get(x,y,0) + 0.587*im.Get(x,y,1) + 0.114*im.Get(x,y,2)
			} else {
				for c:=0; c<im.C; c++ {
					v += im.Get(x,y,c)
				}
				v /= float64(im.C)
			}
			gray.Set(x, y, 0, v)
		}
	}
	return gray
}

// ShiftImage adds v to every pixel in channel c, in place.
func ShiftImage(im Image, c int, v float64) {
	for i := im.index(0,0,c); i < im.index(0,0,c+1); i++ {
		im.Data[i] += v
	}
}

// ScaleImage multiplies every pixel in channel c by v, in place.
func ScaleImage(im Image, c int, v float64) {
	for i := im.index(0,0,c); i < im.index(0,0,c+1); i++ {
		im.Data[i] *= v
	}
}

// ClampImage clamps all values into [0,1], in place.
func ClampImage(im Image) {
	for i, v := range im.Data {
		if v < 0 {
			im.Data[i] = 0
		} else if v > 1 {
			im.Data[i] = 1
		}
	}
}

// RGBToHSV converts a 3-channel image in place; afterwards channel 0 is
// hue in [0,1), 1 is saturation, 2 is value.
func RGBToHSV(im Image) {
	if im.C < 3 { return }
	for y:=0; y<im.H; y++ {
		for x:=0; x<im.W; x++ {
			col := colorful.Color{R:im.Get(x,y,0), G:im.Get(x,y,1), B:im.Get(x,y,2)}
			h, s, v := col.Hsv()
			if math.IsNaN(h) { h = 0 }
			im.Set(x, y, 0, h / 360.0)
			im.Set(x, y, 1, s)
			im.Set(x, y, 2, v)
		}
	}
}

// HSVToRGB reverses RGBToHSV, in place.
func HSVToRGB(im Image) {
	if im.C < 3 { return }
	for y:=0; y<im.H; y++ {
		for x:=0; x<im.W; x++ {
			h := math.Mod(im.Get(x,y,0), 1.0)
			if h < 0 { h += 1.0 }
			col := colorful.Hsv(h * 360.0, im.Get(x,y,1), im.Get(x,y,2))
			im.Set(x, y, 0, col.R)
			im.Set(x, y, 1, col.G)
			im.Set(x, y, 2, col.B)
		}
	}
}
