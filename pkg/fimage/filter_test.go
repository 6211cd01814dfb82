package fimage

import(
	"math"
	"testing"
)

func constant(w, h int, vals ...float64) Image {
	im := New(w, h, len(vals))
	for c, v := range vals {
		for y:=0; y<h; y++ {
			for x:=0; x<w; x++ {
				im.Set(x, y, c, v)
			}
		}
	}
	return im
}

func TestConvolveBox(t *testing.T) {
	im := constant(5, 4, 1, 2, 3)

	diff(t, im, Convolve(im, MakeBoxFilter(3), true), approx)

	// Channels summed into one
	diff(t, constant(5, 4, 6), Convolve(im, MakeBoxFilter(3), false), approx)
}

func TestConvolvePerChannelFilter(t *testing.T) {
	im := constant(3, 3, 1, 1)

	f := New(1, 1, 2)
	f.Set(0, 0, 0, 2)
	f.Set(0, 0, 1, 5)
	diff(t, constant(3, 3, 2, 5), Convolve(im, f, true))
}

func TestGradientFilters(t *testing.T) {
	im := ramp(6, 5, 1) // value 10y + x

	gx := Convolve(im, GxFilter(), false)
	gy := Convolve(im, GyFilter(), false)

	// Interior pixels see the full ramp: 4 * (f(x+1) - f(x-1))
	diff(t, 8.0, gx.Get(2, 2, 0))
	diff(t, 80.0, gy.Get(2, 2, 0))

	// On the left edge, clamping halves the difference
	diff(t, 4.0, gx.Get(0, 2, 0))

	mag, dir := Sobel(im)
	diff(t, math.Hypot(8, 80), mag.Get(3, 2, 0), approx)
	diff(t, math.Atan2(80, 8), dir.Get(3, 2, 0), approx)
}

func TestGaussians(t *testing.T) {
	tests := []struct {
		sigma float64
		width int
	}{
		{0.5, 3},
		{1, 7},
		{2, 13},
		{1.1, 7},
	}
	for _, tc := range tests {
		f := Make1DGaussian(tc.sigma)
		diff(t, tc.width, f.W)
		diff(t, 1, f.H)
		diff(t, 1/math.Sqrt(2*math.Pi*tc.sigma*tc.sigma), f.Get(tc.width/2, 0, 0), approx)
		diff(t, f.Get(0, 0, 0), f.Get(tc.width-1, 0, 0), approx)
	}

	g := MakeGaussianFilter(1.5)
	sum := 0.0
	for _, v := range g.Data {
		sum += v
	}
	diff(t, 1.0, sum, approx)
	diff(t, 9, g.W)
}

func TestSmoothSeparable(t *testing.T) {
	// Smoothing a delta gives the outer product of the 1D kernel
	im := New(9, 9, 1)
	im.Set(4, 4, 0, 1)
	g := Make1DGaussian(1)

	s := SmoothSeparable(im, 1)
	diff(t, g.Get(3, 0, 0) * g.Get(3, 0, 0), s.Get(4, 4, 0), approx)
	diff(t, g.Get(3, 0, 0) * g.Get(5, 0, 0), s.Get(4, 2, 0), approx)
	diff(t, g.Get(1, 0, 0) * g.Get(4, 0, 0), s.Get(2, 3, 0), approx)
}

func TestNormalize(t *testing.T) {
	im := Image{W:4, H:1, C:1, Data:[]float64{1, 1, 2, 4}}
	L1Normalize(im)
	diff(t, []float64{0.125, 0.125, 0.25, 0.5}, im.Data, approx)

	im = Image{W:3, H:1, C:1, Data:[]float64{-2, 0, 2}}
	FeatureNormalize(im)
	diff(t, []float64{0, 0.5, 1}, im.Data, approx)

	flat := constant(2, 2, 7)
	FeatureNormalize(flat)
	diff(t, constant(2, 2, 0), flat)
}

func TestAddSub(t *testing.T) {
	a := constant(2, 2, 3)
	b := constant(2, 2, 1)

	sum, err := AddImage(a, b)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, constant(2, 2, 4), sum)

	d, err := SubImage(a, b)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, constant(2, 2, 2), d)
	diff(t, constant(2, 2, 3), a) // inputs untouched

	if _, err := AddImage(a, constant(3, 2, 1)); err == nil {
		t.Errorf("expected error for mismatched shapes")
	}
}

func TestFiltersSumTo(t *testing.T) {
	sum := func(f Image) float64 {
		s := 0.0
		for _, v := range f.Data { s += v }
		return s
	}
	diff(t, 0.0, sum(HighpassFilter()))
	diff(t, 1.0, sum(SharpenFilter()))
	diff(t, 1.0, sum(EmbossFilter()))
	diff(t, 0.0, sum(GxFilter()))
	diff(t, 1.0, sum(MakeBoxFilter(4)), approx)

	out := ColorizeSobel(ramp(8, 8, 1))
	diff(t, 3, out.C)
}
