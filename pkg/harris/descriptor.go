package harris

import(
	"github.com/abworrall/panorama/pkg/emath"
	"github.com/abworrall/panorama/pkg/fimage"
)

// PatchRadius gives the 5x5 patch that descriptors sample.
const PatchRadius = 2

// A Descriptor summarizes the appearance of the patch around a corner.
// Descriptors are only comparable if built from images with the same
// number of channels.
type Descriptor struct {
	P    emath.Point // integer pixel location
	Data []float64   // center minus neighbour, per channel, per patch offset
}

// Describe builds the descriptor for pixel (x,y). For each channel it
// walks the patch column by column, recording how much the center
// pixel differs from each neighbour.
func Describe(im fimage.Image, x, y int) Descriptor {
	n := 2*PatchRadius + 1
	d := Descriptor{
		P:    emath.Point{X:float64(x), Y:float64(y)},
		Data: make([]float64, 0, n*n*im.C),
	}

	for c:=0; c<im.C; c++ {
		center := im.Get(x, y, c)
		for dx:=-PatchRadius; dx<=PatchRadius; dx++ {
			for dy:=-PatchRadius; dy<=PatchRadius; dy++ {
				d.Data = append(d.Data, center - im.Get(x+dx, y+dy, c))
			}
		}
	}
	return d
}
