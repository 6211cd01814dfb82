package harris

import(
	"github.com/abworrall/panorama/pkg/fimage"
	"github.com/abworrall/panorama/pkg/pool"
)

// Alpha is the empirical constant in the Harris cornerness measure.
const Alpha = 0.06

// StructureMatrix computes the smoothed structure tensor of an image.
// The result has three channels: Ix^2, Iy^2 and IxIy.
func StructureMatrix(im fimage.Image, sigma float64) fimage.Image {
	gray := fimage.RGBToGrayscale(im)

	ix := fimage.Convolve(gray, fimage.GxFilter(), false)
	iy := fimage.Convolve(gray, fimage.GyFilter(), false)

	s := fimage.New(im.W, im.H, 3)
	for y:=0; y<im.H; y++ {
		for x:=0; x<im.W; x++ {
			dx, dy := ix.Get(x,y,0), iy.Get(x,y,0)
			s.Set(x, y, 0, dx*dx)
			s.Set(x, y, 1, dy*dy)
			s.Set(x, y, 2, dx*dy)
		}
	}

	return fimage.SmoothSeparable(s, sigma)
}

// CornernessResponse estimates det(S) - alpha*trace(S)^2 for each pixel
// of the structure tensor S.
func CornernessResponse(s fimage.Image) fimage.Image {
	r := fimage.New(s.W, s.H, 1)
	pool.Run(s.H, func(y int) {
		for x:=0; x<s.W; x++ {
			xx, yy, xy := s.Get(x,y,0), s.Get(x,y,1), s.Get(x,y,2)
			det := xx*yy - xy*xy
			trace := xx + yy
			r.Set(x, y, 0, det - Alpha*trace*trace)
		}
	})
	return r
}
