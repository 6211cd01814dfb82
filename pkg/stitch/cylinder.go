package stitch

import(
	"fmt"
	"math"

	"github.com/abworrall/panorama/pkg/fimage"
)

// CylindricalProject maps the image onto a cylinder of radius f (the
// focal length in pixels) about the image center, then unrolls it.
// Pixels that map from outside the source stay zero.
func CylindricalProject(im fimage.Image, f float64) (fimage.Image, error) {
	if !(f > 0) {
		return fimage.Image{}, fmt.Errorf("cylindrical projection: bad focal length %f", f)
	}

	xc, yc := im.W/2, im.H/2
	w := int(2 * f * math.Atan2(float64(xc), f) - 1)
	if w < 1 { w = 1 }

	out := fimage.New(w, im.H, im.C)
	for i:=-yc; i<im.H-yc; i++ {
		for j:=-w/2; j<=w/2; j++ {
			theta := float64(j) / f
			height := float64(i) / f

			x := f * math.Tan(theta) + float64(xc)
			y := f * height / math.Cos(theta) + float64(yc)
			if !(x >= 0 && x < float64(im.W) && y >= 0 && y < float64(im.H)) {
				continue
			}

			for c:=0; c<im.C; c++ {
				out.Set(j + w/2, i + yc, c, fimage.BilinearInterpolate(im, x, y, c))
			}
		}
	}
	return out, nil
}
