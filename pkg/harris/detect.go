package harris

import(
	"github.com/abworrall/panorama/pkg/fimage"
)

// Detect finds Harris corners in an image, and describes them. Pixels
// survive if they make it through non-maximum suppression (radius nms)
// with a response above thresh. Descriptors come back in scan order,
// rows first.
func Detect(im fimage.Image, sigma, thresh float64, nms int) []Descriptor {
	s := StructureMatrix(im, sigma)
	r := NMS(CornernessResponse(s), nms)

	var ds []Descriptor
	for y:=0; y<r.H; y++ {
		for x:=0; x<r.W; x++ {
			if r.Get(x,y,0) > thresh {
				ds = append(ds, Describe(im, x, y))
			}
		}
	}
	return ds
}

// Response returns the suppressed response map that Detect thresholds;
// useful for debugging.
func Response(im fimage.Image, sigma float64, nms int) fimage.Image {
	return NMS(CornernessResponse(StructureMatrix(im, sigma)), nms)
}
