package pano

import(
	"fmt"
	"path/filepath"

	"github.com/abworrall/panorama/pkg/fimage"
)

// A Layer is one of the input photos.
type Layer struct {
	LoadFilename  string
	FocalLengthPx float64 // from EXIF; zero if unknown

	fimage.Image
}

func (l Layer)String() string {
	str := fmt.Sprintf("%s: %dx%dx%d", l.Filename(), l.W, l.H, l.C)
	if l.FocalLengthPx > 0 {
		str += fmt.Sprintf(", focal length %.1fpx", l.FocalLengthPx)
	}
	return str
}

func (l Layer)Filename() string {
	return filepath.Base(l.LoadFilename)
}
