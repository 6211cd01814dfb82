package pano

import(
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/abworrall/panorama/pkg/fimage"
)

func (s *Stitcher)LoadFilesAndDirs(args ...string) error {
	for _, arg := range args {
		item, err := os.Stat(arg)

		switch {

		case err != nil:
			return fmt.Errorf("load %s: %v", arg, err)

		case item.IsDir():
			// Is a dir, recurse into contents
			contents, err := ioutil.ReadDir(arg)
			if err != nil {
				return fmt.Errorf("readdir %s: %v", arg, err)
			}
			for _, content := range contents {
				if err := s.LoadFilesAndDirs(filepath.Join(arg, content.Name())); err != nil {
					return fmt.Errorf("load %s: %v", arg, err)
				}
			}

		default: // is a file, load it
			if err := s.loadFile(arg); err != nil {
				return fmt.Errorf("loadfile %s: %v", arg, err)
			}
		}
	}

	return nil
}

func (s *Stitcher)loadFile(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {

	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".hdr":
		l, err := s.loadLayer(filename)
		if err != nil {
			return fmt.Errorf("Loading %s as image failed: %v", filename, err)
		}
		s.AddLayer(l)

	case ".yaml":
		cfg, err := loadConfig(filename)
		if err != nil {
			return fmt.Errorf("Loading %s as config YAML failed: %v", filename, err)
		}
		s.Config = cfg
		log.Printf("Loaded base configuration from %s\n", filename)
	}

	return nil
}

func loadConfig(filename string) (Config, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %v", filename, err)
	}

	return newConfigFromYaml(contents)
}

func (s *Stitcher)loadLayer(filename string) (Layer, error) {
	l := Layer{LoadFilename: filename}

	img, err := fimage.Load(filename)
	if err != nil {
		return l, err
	}
	l.Image = img

	// Only jpegs and tiffs carry EXIF; a photo without it just can't be
	// projected unless the config supplies a focal length.
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".tif", ".tiff":
		if f, err := exifFocalLengthPx(filename, img.W); err != nil {
			if s.Verbosity > 1 {
				log.Printf("%s: no focal length: %v\n", filename, err)
			}
		} else {
			l.FocalLengthPx = f
		}
	}

	return l, nil
}

// exifFocalLengthPx converts the lens focal length into pixels. It
// prefers the sensor resolution tags; failing that, it scales the 35mm
// equivalent focal length by the image width (a 35mm frame is 36mm wide).
func exifFocalLengthPx(filename string, width int) (float64, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return 0, fmt.Errorf("open+r exif '%s': %v", filename, err)
	}
	defer reader.Close()

	ex, err := exif.Decode(reader)
	if err != nil {
		return 0, fmt.Errorf("exif parsing '%s': %v", filename, err)
	}

	if mm, err := exifRat(ex, exif.FocalLength); err == nil {
		if res, err := exifRat(ex, exif.FocalPlaneXResolution); err == nil {
			if tag, err := ex.Get(exif.FocalPlaneResolutionUnit); err == nil {
				if unit, err := tag.Int(0); err == nil {
					if perMM := resolutionUnitMM(unit); perMM > 0 {
						return mm * res / perMM, nil
					}
				}
			}
		}
	}

	if tag, err := ex.Get(exif.FocalLengthIn35mmFilm); err != nil {
		return 0, fmt.Errorf("exif FocalLengthIn35mmFilm '%s': %v", filename, err)
	} else if f35, err := tag.Int(0); err != nil {
		return 0, fmt.Errorf("exif FocalLengthIn35mmFilm '%s': %v", filename, err)
	} else if f35 <= 0 {
		return 0, fmt.Errorf("exif FocalLengthIn35mmFilm '%s': bad value %d", filename, f35)
	} else {
		return float64(f35) / 36.0 * float64(width), nil
	}
}

func exifRat(ex *exif.Exif, name exif.FieldName) (float64, error) {
	tag, err := ex.Get(name)
	if err != nil {
		return 0, err
	}
	num, denom, err := tag.Rat2(0)
	if err != nil {
		return 0, err
	} else if denom == 0 || num <= 0 {
		return 0, fmt.Errorf("exif %s: bad value %d/%d", name, num, denom)
	}
	return float64(num) / float64(denom), nil
}

// resolutionUnitMM is the length of a FocalPlaneResolutionUnit, in mm.
func resolutionUnitMM(unit int) float64 {
	switch unit {
	case 2:  return 25.4 // inch
	case 3:  return 10   // cm
	case 4:  return 1    // mm
	case 5:  return 0.001
	default: return 0
	}
}
