package emath

import(
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var ErrUnderdetermined = errors.New("underdetermined system")

// LeastSquares finds x minimizing |Ax - b|, via a QR factorization. A
// needs at least as many rows as columns. Rank deficient (or nearly
// so) systems come back as ErrSingular.
func LeastSquares(a *mat.Dense, b *mat.VecDense) (*mat.VecDense, error) {
	r, c := a.Dims()
	if r < c {
		return nil, fmt.Errorf("%w: %dx%d", ErrUnderdetermined, r, c)
	}

	var qr mat.QR
	qr.Factorize(a)

	x := mat.NewVecDense(c, nil)
	if err := qr.SolveVecTo(x, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	for i:=0; i<c; i++ {
		if v := x.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrSingular
		}
	}

	return x, nil
}
