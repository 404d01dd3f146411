package motion

import "math"

const (
	ThumbCount = 6
	ThumbSize  = 70
	ringInset  = 8
)

// Thumb is one carousel thumbnail: its top-left offset inside the container
// and the product index it jumps to.
// swagger:model RingThumb
type Thumb struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Target int     `json:"target"`
	Delay  float64 `json:"delay"`
}

// Ring lays n thumbnails of size thumb on a circle inside a square container,
// starting at twelve o'clock. Thumbnail i targets (index+i+1) mod count.
// It returns nil when count is not positive.
func Ring(container, thumb float64, n, index, count int) []Thumb {
	if count <= 0 || n <= 0 {
		return nil
	}
	center := container / 2
	radius := center - thumb/2 - ringInset
	out := make([]Thumb, n)
	for i := range out {
		angle := float64(i)/float64(n)*2*math.Pi - math.Pi/2
		x := center + radius*math.Cos(angle)
		y := center + radius*math.Sin(angle)
		out[i] = Thumb{
			Left:   x - thumb/2,
			Top:    y - thumb/2,
			Target: ((index+i+1)%count + count) % count,
			Delay:  float64(i) * 0.1,
		}
	}
	return out
}

// ContainerFor picks the desktop carousel size for a viewport width.
func ContainerFor(viewport int) float64 {
	switch {
	case viewport >= 1536:
		return 520
	case viewport >= 1280:
		return 480
	default:
		return 380
	}
}
