package motion

import "math"

const DefaultSamples = 9

var (
	arcStart   = Point{X: -400, Y: 350}
	arcControl = Point{X: 0, Y: -180}
	arcEnd     = Point{X: 0, Y: 0}
)

// Frame is a single animation target.
type Frame struct {
	X       *float64 `json:"x,omitempty"`
	Y       *float64 `json:"y,omitempty"`
	Opacity float64  `json:"opacity"`
	Scale   float64  `json:"scale"`
	Rotate  *float64 `json:"rotate,omitempty"`
}

// Transition mirrors a framer-motion transition. Ease is either a named
// curve or four control points.
type Transition struct {
	Duration float64   `json:"duration"`
	Times    []float64 `json:"times,omitempty"`
	Ease     any       `json:"ease,omitempty"`
}

// Keyframes holds one track per property.
type Keyframes struct {
	X          []float64  `json:"x,omitempty"`
	Y          []float64  `json:"y,omitempty"`
	Opacity    []float64  `json:"opacity"`
	Scale      []float64  `json:"scale"`
	Rotate     []float64  `json:"rotate,omitempty"`
	Transition Transition `json:"transition"`
}

// Variants is the enter/exit description of the featured product.
// swagger:model Variants
type Variants struct {
	Initial Frame     `json:"initial"`
	Animate Keyframes `json:"animate"`
	Exit    Keyframes `json:"exit"`
}

// ArcVariants samples the entrance along the arc from bottom-left into
// place. samples+1 frames are produced; samples < 1 uses DefaultSamples.
func ArcVariants(samples int) Variants {
	if samples < 1 {
		samples = DefaultSamples
	}
	n := samples + 1
	in := Keyframes{
		X:       make([]float64, 0, n),
		Y:       make([]float64, 0, n),
		Opacity: make([]float64, 0, n),
		Scale:   make([]float64, 0, n),
		Rotate:  make([]float64, 0, n),
		Transition: Transition{
			Duration: 2.0,
			Times:    make([]float64, 0, n),
			Ease:     "easeInOut",
		},
	}
	for i := 0; i <= samples; i++ {
		raw := float64(i) / float64(samples)
		t := EaseOutArc.Ease(raw)
		p := QuadPoint(arcStart, arcControl, arcEnd, t)
		in.X = append(in.X, p.X)
		in.Y = append(in.Y, p.Y)
		in.Opacity = append(in.Opacity, t)
		in.Scale = append(in.Scale, 0.3+t*0.7)
		in.Rotate = append(in.Rotate, -10*(1-math.Min(t*1.4, 1)))
		in.Transition.Times = append(in.Transition.Times, raw)
	}

	lastX, lastY := in.X[n-1], in.Y[n-1]
	x0, y0, r0 := in.X[0], in.Y[0], -10.0
	return Variants{
		Initial: Frame{X: &x0, Y: &y0, Opacity: 0, Scale: 0.3, Rotate: &r0},
		Animate: in,
		Exit: Keyframes{
			X:       []float64{lastX, lastX + 200, lastX + 300},
			Y:       []float64{lastY, lastY - 120, 350},
			Opacity: []float64{1, 0.5, 0},
			Scale:   []float64{1, 0.7, 0.3},
			Rotate:  []float64{0, 8, 12},
			Transition: Transition{
				Duration: 1.2,
				Times:    []float64{0, 0.5, 1},
				Ease:     EaseExit.Array(),
			},
		},
	}
}

// ReducedVariants is the fade-and-scale used when the visitor prefers reduced motion.
func ReducedVariants() Variants {
	return Variants{
		Initial: Frame{Opacity: 0, Scale: 0.95},
		Animate: Keyframes{
			Opacity:    []float64{1},
			Scale:      []float64{1},
			Transition: Transition{Duration: 0.3},
		},
		Exit: Keyframes{
			Opacity: []float64{0},
			Scale:   []float64{0.95},
		},
	}
}
