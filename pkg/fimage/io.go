package fimage

// Converting to/from golang's image libraries, and files

import(
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"golang.org/x/image/draw"      // replace by "image/draw" at some point
	"golang.org/x/image/tiff"

	"github.com/abworrall/panorama/pkg/emath"
)

// FromImage converts to floats in [0,1] (HDR images may go higher).
// Gray images give a 1-channel image, everything else 3 channels; alpha
// is dropped.
func FromImage(img image.Image) Image {
	b := img.Bounds()

	if hi, ok := img.(hdr.Image); ok {
		im := New(b.Dx(), b.Dy(), 3)
		for y:=0; y<im.H; y++ {
			for x:=0; x<im.W; x++ {
				r, g, bl, _ := hi.HDRAt(b.Min.X+x, b.Min.Y+y).HDRRGBA()
				im.Set(x, y, 0, r)
				im.Set(x, y, 1, g)
				im.Set(x, y, 2, bl)
			}
		}
		return im
	}

	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		im := New(b.Dx(), b.Dy(), 1)
		for y:=0; y<im.H; y++ {
			for x:=0; x<im.W; x++ {
				g := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
				im.Set(x, y, 0, float64(g.Y) / 65535.0)
			}
		}
		return im
	}

	// Normalize whatever we were given (paletted, YCbCr, NRGBA, ...) into RGBA64
	rgba := image.NewRGBA64(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	im := New(b.Dx(), b.Dy(), 3)
	for y:=0; y<im.H; y++ {
		for x:=0; x<im.W; x++ {
			col := rgba.RGBA64At(x, y)
			im.Set(x, y, 0, float64(col.R) / 65535.0)
			im.Set(x, y, 1, float64(col.G) / 65535.0)
			im.Set(x, y, 2, float64(col.B) / 65535.0)
		}
	}
	return im
}

// ToRGBA64 clamps into [0,1]. If gamma is set, values are assumed to be
// linear light and are gamma expanded into sRGB.
func (im Image)ToRGBA64(gamma bool) *image.RGBA64 {
	img := image.NewRGBA64(image.Rect(0, 0, im.W, im.H))

	conv := func(v float64) uint16 {
		v = emath.Clamp01(v)
		if gamma { v = emath.GammaExpand(v) }
		return uint16(v * 65535.0 + 0.5)
	}

	for y:=0; y<im.H; y++ {
		for x:=0; x<im.W; x++ {
			r := conv(im.Get(x, y, 0))
			g, b := r, r
			if im.C >= 3 {
				g = conv(im.Get(x, y, 1))
				b = conv(im.Get(x, y, 2))
			}
			img.SetRGBA64(x, y, color.RGBA64{r, g, b, 0xFFFF})
		}
	}
	return img
}

// Load decodes a png, jpeg, tiff or radiance hdr file.
func Load(filename string) (Image, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return Image{}, fmt.Errorf("open+r '%s': %v", filename, err)
	}
	defer reader.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tif", ".tiff":
		img, err = tiff.Decode(reader)
	case ".hdr":
		img, err = rgbe.Decode(reader)
	default:
		img, _, err = image.Decode(reader)
	}
	if err != nil {
		return Image{}, fmt.Errorf("decode '%s': %v", filename, err)
	}

	return FromImage(img), nil
}

func WritePNG(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return png.Encode(writer, img)
	}
}

// WriteHDR writes the unclamped float values as a radiance RGBE file.
func (im Image)WriteHDR(filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		if err := rgbe.Encode(writer, im); err != nil {
			return fmt.Errorf("rgbe encode '%s': %v", filename, err)
		}
	}
	return nil
}

// Preview scales an image down (never up) to fit within the given width.
func Preview(img image.Image, width int) image.Image {
	b := img.Bounds()
	if width <= 0 || b.Dx() <= width {
		return img
	}

	height := b.Dy() * width / b.Dx()
	if height < 1 { height = 1 }

	dst := image.NewRGBA64(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
