// Package motion computes the keyframes of the featured-product carousel.
package motion

import "math"

const (
	newtonIterations = 5
	newtonTolerance  = 1e-4
)

// CubicBezier is a CSS-style timing curve through (0,0), (X1,Y1), (X2,Y2), (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

var (
	EaseOutArc = CubicBezier{0.22, 1, 0.36, 1}
	EaseExit   = CubicBezier{0.65, 0, 0.35, 1}
)

// Ease maps progress x to eased progress. u is found by Newton's method on
// x(u) = x, seeded with u = x.
func (c CubicBezier) Ease(x float64) float64 {
	cx := 3 * c.X1
	bx := 3*(c.X2-c.X1) - cx
	ax := 1 - cx - bx
	cy := 3 * c.Y1
	by := 3*(c.Y2-c.Y1) - cy
	ay := 1 - cy - by

	u := x
	for i := 0; i < newtonIterations; i++ {
		fx := ((ax*u+bx)*u+cx)*u - x
		if math.Abs(fx) < newtonTolerance {
			break
		}
		d := (3*ax*u+2*bx)*u + cx
		if d == 0 {
			break
		}
		u -= fx / d
	}
	return ((ay*u+by)*u + cy) * u
}

// Array returns the control points in framer order.
func (c CubicBezier) Array() [4]float64 {
	return [4]float64{c.X1, c.Y1, c.X2, c.Y2}
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Quad evaluates the quadratic Bézier p0,p1,p2 at t.
func Quad(p0, p1, p2, t float64) float64 {
	u := 1 - t
	return u*u*p0 + 2*u*t*p1 + t*t*p2
}

func QuadPoint(p0, p1, p2 Point, t float64) Point {
	return Point{X: Quad(p0.X, p1.X, p2.X, t), Y: Quad(p0.Y, p1.Y, p2.Y, t)}
}
