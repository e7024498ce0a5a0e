package forecast

import "math/rand"

// Noise draws a symmetric random perturbation in [-1, 1). The engine scales
// the draw by the window's price dispersion; tests substitute a zero source
// to make price assertions exact.
type Noise interface {
	Draw() float64
}

type uniformNoise struct{}

func (uniformNoise) Draw() float64 { return rand.Float64()*2 - 1 }

// NewNoise returns the production noise source.
func NewNoise() Noise { return uniformNoise{} }
