package main

import(
	"flag"
	"log"

	"github.com/abworrall/panorama/pkg/pano"
)

var(
	fVerbosity int
	fWorkers int
	fOutputFilename string
	fHDRFilename string
	fPreviewWidth int
	fGamma bool
	fTonemapper string

	fSigma float64
	fThresh float64
	fNMS int
	fInlierThresh float64
	fIterations int
	fCutoff int
	fSeed int64
	fMaxCanvas int

	fCylindrical bool
	fFocalLength float64
	fDebugDir string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get (2 writes debug images)")
	flag.IntVar(&fWorkers, "workers", 0, "how many goroutines to use (0 for one per CPU)")
	flag.StringVar(&fOutputFilename, "o", "", "name of output PNG file")
	flag.StringVar(&fHDRFilename, "hdr", "", "if set, also write the output as a radiance HDR file")
	flag.IntVar(&fPreviewWidth, "preview", 0, "if >0, also write a preview image this wide")
	flag.BoolVar(&fGamma, "gamma", false, "apply sRGB gamma expansion to the PNG output")
	flag.StringVar(&fTonemapper, "tonemapper", "", "how to tonemap HDR results for the PNG output: "+pano.ListTonemappers())

	flag.Float64Var(&fSigma, "sigma", 0, "gaussian sigma for the structure tensor (default 2)")
	flag.Float64Var(&fThresh, "thresh", 0, "min cornerness response (default 50)")
	flag.IntVar(&fNMS, "nms", 0, "radius of non-maximum suppression (default 3)")
	flag.Float64Var(&fInlierThresh, "inlierthresh", 0, "max reprojection error in pixels (default 2)")
	flag.IntVar(&fIterations, "iters", 0, "RANSAC iterations (default 10000)")
	flag.IntVar(&fCutoff, "cutoff", 0, "RANSAC stops once a model has more inliers than this (default 30)")
	flag.Int64Var(&fSeed, "seed", 0, "RANSAC random seed (default 10)")
	flag.IntVar(&fMaxCanvas, "maxcanvas", 0, "refuse to build a panorama wider or taller than this")

	flag.BoolVar(&fCylindrical, "cylinder", false, "project the images onto a cylinder before stitching")
	flag.Float64Var(&fFocalLength, "focal", 0, "focal length in pixels, for -cylinder (default from EXIF)")
	flag.StringVar(&fDebugDir, "debugdir", "", "where to write debug images")
	flag.Parse()

	log.Printf("panorama starting\n")
}

func main() {
	s := pano.NewStitcher()
	if err := s.LoadFilesAndDirs(flag.Args()...); err != nil {
		log.Fatal(err)
	}

	// Override the config file with command line args, if relevant
	if fVerbosity > 0 { s.Verbosity = fVerbosity }
	if fWorkers > 0 { s.Workers = fWorkers }
	if fOutputFilename != "" { s.OutputFilename = fOutputFilename }
	if fHDRFilename != "" { s.HDRFilename = fHDRFilename }
	if fPreviewWidth > 0 { s.PreviewWidth = fPreviewWidth }
	if fSigma > 0 { s.Params.Sigma = fSigma }
	if fThresh > 0 { s.Params.Thresh = fThresh }
	if fNMS > 0 { s.Params.NMS = fNMS }
	if fInlierThresh > 0 { s.Params.InlierThresh = fInlierThresh }
	if fIterations > 0 { s.Params.Iterations = fIterations }
	if fCutoff > 0 { s.Params.Cutoff = fCutoff }
	if fSeed != 0 { s.Params.Seed = fSeed }
	if fMaxCanvas > 0 { s.Params.MaxCanvas = fMaxCanvas }
	if fFocalLength > 0 { s.FocalLength = fFocalLength }
	if fDebugDir != "" { s.DebugDir = fDebugDir }
	if fTonemapper != "" { s.Tonemapper = fTonemapper }

	// Just set the bool vars, if asked
	if fCylindrical { s.Cylindrical = true }
	if fGamma { s.OutputGamma = true }

	if s.Verbosity > 0 {
		log.Printf("Images loaded: %s", s)
		log.Printf("Final configuration:-\n\n%s\n", s.Config.AsYaml())
	}

	if err := s.Run(); err != nil {
		log.Fatalf("stitch failed, err: %v\n", err)
	}
	if err := s.WriteOutputs(); err != nil {
		log.Fatal(err)
	}
}
