package emath

import(
	"fmt"
	"math"
)

// A Point is a location in an image plane. Pixel centers sit on the
// integers; projected points can be fractional, or negative.
type Point struct {
	X, Y float64
}

func (p Point)String() string { return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y) }

func (p Point)Dist(q Point) float64 {
	return math.Hypot(p.X - q.X, p.Y - q.Y)
}

// Cross returns twice the signed area of the triangle (p,q,r); zero
// when the three points are collinear.
func Cross(p, q, r Point) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

// Bounds is the axis-aligned bounding box of a set of points.
func Bounds(pts ...Point) (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range pts {
		if p.X < min.X { min.X = p.X }
		if p.Y < min.Y { min.Y = p.Y }
		if p.X > max.X { max.X = p.X }
		if p.Y > max.Y { max.Y = p.Y }
	}
	return
}
