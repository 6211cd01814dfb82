package pano

import(
	"fmt"
	"log"
	"path/filepath"
	"sort"

	"github.com/abworrall/panorama/pkg/fimage"
	"github.com/abworrall/panorama/pkg/harris"
	"github.com/abworrall/panorama/pkg/pool"
	"github.com/abworrall/panorama/pkg/stitch"
)

// Stitcher holds the input layers, and stitches the second one onto the
// first.
type Stitcher struct {
	Layers []Layer // Sorted by filename before stitching
	Config

	Result stitch.Result
}

func NewStitcher() Stitcher {
	return Stitcher{
		Layers: []Layer{},
		Config: NewConfig(),
	}
}

func (s Stitcher)String() string {
	str := "Stitcher [\n"
	for _, l := range s.Layers {
		str += fmt.Sprintf("  %s\n", l)
	}
	return str + "]\n"
}

func (s *Stitcher)AddLayer(l Layer) {
	s.Layers = append(s.Layers, l)
}

// Run stitches the two layers; the result ends up in s.Result.
func (s *Stitcher)Run() error {
	if len(s.Layers) != 2 {
		return fmt.Errorf("need exactly two images to stitch, have %d", len(s.Layers))
	}
	if s.Workers > 0 {
		pool.Workers = s.Workers
	}

	sort.Slice(s.Layers, func(i, j int) bool { return s.Layers[i].LoadFilename < s.Layers[j].LoadFilename })

	a, err := s.prepare(s.Layers[0])
	if err != nil {
		return err
	}
	b, err := s.prepare(s.Layers[1])
	if err != nil {
		return err
	}

	if s.Verbosity > 0 {
		log.Printf("stitching %s onto %s\n", s.Layers[1].Filename(), s.Layers[0].Filename())
	}

	res, err := stitch.Stitch(a, b, s.Params)
	if err != nil {
		return fmt.Errorf("stitch: %v", err)
	}
	s.Result = res

	if s.Verbosity > 0 {
		log.Printf("corners: %d in %s, %d in %s\n", len(res.ACorners), s.Layers[0].Filename(),
			len(res.BCorners), s.Layers[1].Filename())
		log.Printf("%s\n", stitch.DistanceStats(res.Matches))
		log.Printf("%s\n", res.Estimate)
		log.Printf("canvas is %s\n", res.Image)
	}
	if !res.Estimate.Found {
		log.Printf("no homography found, images placed side by side\n")
	}

	if s.Verbosity > 1 {
		if err := s.writeDebugImages(a, b); err != nil {
			return err
		}
	}

	return nil
}

// prepare applies the cylindrical projection, if configured.
func (s *Stitcher)prepare(l Layer) (fimage.Image, error) {
	if !s.Cylindrical {
		return l.Image, nil
	}

	f := s.FocalLength
	if f <= 0 { f = l.FocalLengthPx }
	if f <= 0 {
		return fimage.Image{}, fmt.Errorf("%s: cylindrical projection needs a focal length", l.Filename())
	}

	if s.Verbosity > 0 {
		log.Printf("%s: cylindrical projection, f=%.1fpx\n", l.Filename(), f)
	}
	return stitch.CylindricalProject(l.Image, f)
}

func (s *Stitcher)debugFilename(name string) string {
	return filepath.Join(s.DebugDir, name)
}

// writeDebugImages dumps the response maps, the detected corners, and
// the matches (inliers in green).
func (s *Stitcher)writeDebugImages(a, b fimage.Image) error {
	p := s.Params

	for i, im := range []fimage.Image{a, b} {
		r := harris.Response(im, p.Sigma, p.NMS)
		title := fmt.Sprintf("%s: response, sigma=%.1f nms=%d", s.Layers[i].Filename(), p.Sigma, p.NMS)
		if err := fimage.DumpGray(r, title, s.debugFilename(fmt.Sprintf("response-%d.png", i))); err != nil {
			return err
		}

		marked, _ := harris.DetectAndDrawCorners(im, p.Sigma, p.Thresh, p.NMS)
		if err := fimage.WritePNG(marked.ToRGBA64(false), s.debugFilename(fmt.Sprintf("corners-%d.png", i))); err != nil {
			return err
		}
	}

	// DrawInliers reorders the matches it is given
	ms := append([]stitch.Match{}, s.Result.Matches...)
	est := s.Result.Estimate
	im := stitch.DrawInliers(a, b, est.H, ms, p.InlierThresh)
	title := fmt.Sprintf("%d matches, %d inliers", len(ms), est.Inliers)
	return fimage.Annotate(im.ToRGBA64(false), title, s.debugFilename("inliers.png"))
}

// WriteOutputs writes the panorama as PNG, plus optional HDR and preview
// images.
func (s *Stitcher)WriteOutputs() error {
	im := s.Result.Image
	if im.W == 0 {
		return fmt.Errorf("nothing to write, run the stitcher first")
	}

	ldr, err := s.lowDynamicRange()
	if err != nil {
		return err
	}
	if err := fimage.WritePNG(ldr, s.OutputFilename); err != nil {
		return err
	}
	log.Printf("output file written '%s'\n", s.OutputFilename)

	if s.HDRFilename != "" {
		if err := im.WriteHDR(s.HDRFilename); err != nil {
			return err
		}
		log.Printf("HDR output file written '%s'\n", s.HDRFilename)
	}

	if s.PreviewWidth > 0 && s.PreviewFilename != "" {
		if err := fimage.WritePNG(fimage.Preview(ldr, s.PreviewWidth), s.PreviewFilename); err != nil {
			return err
		}
		if s.Verbosity > 0 {
			log.Printf("preview written '%s'\n", s.PreviewFilename)
		}
	}

	return nil
}
