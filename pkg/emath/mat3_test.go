package emath

import(
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/mat"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestMat3Mult(t *testing.T) {
	a := Mat3{1, 2, 3,  4, 5, 6,  7, 8, 9}
	diff(t, a, a.Mult(Identity()))
	diff(t, a, Identity().Mult(a))
	diff(t, Translation(3, 5), Translation(1, 2).Mult(Translation(2, 3)))
	diff(t, Mat3{1, 4, 7,  2, 5, 8,  3, 6, 9}, a.Transpose())
}

func TestMat3Project(t *testing.T) {
	tests := []struct {
		name string
		m    Mat3
		in   Point
		want Point
	}{
		{"identity", Identity(), Point{3, 4}, Point{3, 4}},
		{"translate", Translation(3, -1), Point{3, 4}, Point{6, 3}},
		{"scale", Mat3{2, 0, 0,  0, 2, 0,  0, 0, 1}, Point{3, 4}, Point{6, 8}},
		{"perspective", Mat3{1, 0, 0,  0, 1, 0,  0, 0, 2}, Point{3, 4}, Point{1.5, 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			diff(t, tc.want, tc.m.Project(tc.in), approx)
		})
	}
}

func TestMat3Invert(t *testing.T) {
	h := Mat3{1.02, 0.01, 15,  -0.01, 0.98, -7,  1e-5, 2e-5, 1}
	inv, err := h.Invert()
	if err != nil {
		t.Fatalf("invert: %v", err)
	}
	diff(t, Identity(), h.Mult(inv), cmpopts.EquateApprox(0, 1e-12))

	p := Point{120, 45}
	diff(t, p, inv.Project(h.Project(p)), approx)

	if _, err := (Mat3{1, 2, 3,  2, 4, 6,  0, 0, 1}).Invert(); !errors.Is(err, ErrSingular) {
		t.Errorf("singular matrix: got err %v, want ErrSingular", err)
	}
}

func TestMat3IsFinite(t *testing.T) {
	diff(t, true, Identity().IsFinite())
	diff(t, false, (Mat3{1, 0, math.NaN(),  0, 1, 0,  0, 0, 1}).IsFinite())
	diff(t, false, (Mat3{1, 0, 0,  0, 1, 0,  math.Inf(-1), 0, 1}).IsFinite())
}

func TestLeastSquares(t *testing.T) {
	// Overdetermined but consistent: y = 2x + 1
	a := mat.NewDense(4, 2, []float64{
		0, 1,
		1, 1,
		2, 1,
		3, 1,
	})
	b := mat.NewVecDense(4, []float64{1, 3, 5, 7})

	x, err := LeastSquares(a, b)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	diff(t, []float64{2, 1}, []float64{x.AtVec(0), x.AtVec(1)}, approx)

	rankDeficient := mat.NewDense(3, 2, []float64{
		1, 0,
		2, 0,
		3, 0,
	})
	if _, err := LeastSquares(rankDeficient, mat.NewVecDense(3, []float64{1, 2, 3})); !errors.Is(err, ErrSingular) {
		t.Errorf("rank deficient: got err %v, want ErrSingular", err)
	}

	wide := mat.NewDense(1, 2, []float64{1, 1})
	if _, err := LeastSquares(wide, mat.NewVecDense(1, []float64{1})); !errors.Is(err, ErrUnderdetermined) {
		t.Errorf("wide: got err %v, want ErrUnderdetermined", err)
	}
}

func TestCross(t *testing.T) {
	diff(t, 0.0, Cross(Point{0, 0}, Point{1, 1}, Point{3, 3}))
	diff(t, 1.0, Cross(Point{0, 0}, Point{1, 0}, Point{0, 1}))

	min, max := Bounds(Point{3, -1}, Point{-2, 4}, Point{0, 0})
	diff(t, Point{-2, -1}, min)
	diff(t, Point{3, 4}, max)
}
