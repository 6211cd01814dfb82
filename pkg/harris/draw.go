package harris

import(
	"github.com/abworrall/panorama/pkg/emath"
	"github.com/abworrall/panorama/pkg/fimage"
)

// MarkSpot draws a magenta cross, 19 pixels wide, centered on p.
// 1-channel images get a white cross.
func MarkSpot(im *fimage.Image, p emath.Point) {
	x, y := int(p.X), int(p.Y)
	col := []float64{1, 0, 1}

	for i:=-9; i<10; i++ {
		for c:=0; c<im.C && c<3; c++ {
			v := col[c]
			if im.C < 3 { v = 1 }
			im.Set(x+i, y, c, v)
			im.Set(x, y+i, c, v)
		}
	}
}

// MarkCorners draws a MarkSpot cross on each descriptor's location.
func MarkCorners(im *fimage.Image, ds []Descriptor) {
	for _, d := range ds {
		MarkSpot(im, d.P)
	}
}

// DetectAndDrawCorners returns a copy of the image with the detected
// corners marked, and the corners.
func DetectAndDrawCorners(im fimage.Image, sigma, thresh float64, nms int) (fimage.Image, []Descriptor) {
	ds := Detect(im, sigma, thresh, nms)
	out := im.Copy()
	MarkCorners(&out, ds)
	return out, ds
}
