package pano

import(
	"fmt"
	"image"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/tmo"
)

var(
	Tonemappers = []string{"drago03", "durand", "icam06", "linear", "reinhard05"}
)

func ListTonemappers() string {
	return fmt.Sprintf("%v", Tonemappers)
}

// newTonemapper sets up the named operator. Useful when the inputs were
// radiance HDR files, and the panorama has values well above 1.
func newTonemapper(name string, img hdr.Image) (tmo.ToneMappingOperator, error) {
	switch name {
	case "drago03":    return tmo.NewDefaultDrago03(img), nil
	case "durand":     return tmo.NewDefaultDurand(img), nil
	case "icam06":     return tmo.NewDefaultICam06(img), nil
	case "linear":     return tmo.NewLinear(img), nil
	case "reinhard05": return tmo.NewDefaultReinhard05(img), nil
	}

	return nil, fmt.Errorf("tonemapper %q not recognized, wanted one of %s", name, ListTonemappers())
}

// lowDynamicRange renders the result for PNG output: tonemapped if a
// tonemapper is configured, else clamped.
func (s *Stitcher)lowDynamicRange() (image.Image, error) {
	if s.Tonemapper == "" {
		return s.Result.Image.ToRGBA64(s.OutputGamma), nil
	}

	op, err := newTonemapper(s.Tonemapper, s.Result.Image)
	if err != nil {
		return nil, err
	}
	return op.Perform(), nil
}
