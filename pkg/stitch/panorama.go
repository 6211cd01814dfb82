package stitch

import(
	"math/rand"

	"github.com/abworrall/panorama/pkg/fimage"
	"github.com/abworrall/panorama/pkg/harris"
)

// Params drives the whole pipeline.
type Params struct {
	Sigma        float64 // gaussian for smoothing the structure tensor
	Thresh       float64 // min corner response
	NMS          int     // radius for non-maximum suppression
	InlierThresh float64 // max reprojection error (pixels) for a RANSAC inlier
	Iterations   int     // RANSAC iterations
	Cutoff       int     // RANSAC stops once a model has more inliers than this
	Seed         int64   // for RANSAC's shuffles
	MaxCanvas    int     // refuse to build canvases wider or taller than this (0 for no limit)
}

func DefaultParams() Params {
	return Params{
		Sigma:        2,
		Thresh:       50,
		NMS:          3,
		InlierThresh: 2,
		Iterations:   10000,
		Cutoff:       30,
		Seed:         10,
		MaxCanvas:    20000,
	}
}

// A Result holds the panorama, and everything that went into it.
type Result struct {
	Image    fimage.Image
	ACorners []harris.Descriptor
	BCorners []harris.Descriptor
	Matches  []Match // Matches[:Estimate.Inliers] are the inliers
	Estimate Estimate
}

// Stitch finds corners in both images, matches them, fits a homography
// from a to b, and composites b onto a. If nothing matches, the images
// are composited using the RANSAC fallback (see Estimate.Found).
func Stitch(a, b fimage.Image, p Params) (Result, error) {
	res := Result{
		ACorners: harris.Detect(a, p.Sigma, p.Thresh, p.NMS),
		BCorners: harris.Detect(b, p.Sigma, p.Thresh, p.NMS),
	}

	ms, err := MatchDescriptors(res.ACorners, res.BCorners)
	if err != nil {
		return res, err
	}
	res.Matches = ms

	rng := rand.New(rand.NewSource(p.Seed))
	res.Estimate = RANSAC(rng, res.Matches, p.InlierThresh, p.Iterations, p.Cutoff)

	res.Image, err = CombineImagesMax(a, b, res.Estimate.H, p.MaxCanvas)
	return res, err
}

// Panorama is Stitch, when all you want is the picture.
func Panorama(a, b fimage.Image, p Params) (fimage.Image, error) {
	res, err := Stitch(a, b, p)
	return res.Image, err
}
