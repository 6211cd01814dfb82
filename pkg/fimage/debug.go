package fimage

import(
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg" // Move to https://pkg.go.dev/golang.org/x/image/font#Drawer sometime

	"github.com/abworrall/panorama/pkg/emath"
)

// DumpGray saves channel 0 as a grayscale png, stretched to the range
// of values, and gamma scaled to look normal for human vision. Infinite
// values (e.g. suppressed responses) are drawn black.
func DumpGray(im Image, title, filename string) error {
	min, max := im.MinMax()

	img := image.NewRGBA64(image.Rectangle{Max:image.Point{im.W, im.H}})
	for x:=0; x<im.W; x++ {
		for y:=0; y<im.H; y++ {
			gray := 0.0
			if v := im.Get(x, y, 0); !math.IsInf(v, 0) && max > min {
				gray = emath.GammaExpand((v - min) / (max - min))
			}
			col := color.RGBA64{uint16(gray * 65535.0), uint16(gray * 65535.0), uint16(gray * 65535.0), 0xFFFF}
			img.Set(x, y, col)
		}
	}

	return Annotate(img, title, filename)
}

// Annotate writes the title into the top left of the image, and saves
// it as a png.
func Annotate(img image.Image, title, filename string) error {
	dc := gg.NewContextForImage(img)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(title, 10, 20)
	return dc.SavePNG(filename)
}
