package weights

import (
	"fmt"
	"math"
	"sort"
)

// Bounds enforced on every ensemble coefficient after optimizer mutation.
const (
	MinWeight = 0.05
	MaxWeight = 0.90

	// SumTolerance is the allowed deviation of the weight sum from 1.0.
	SumTolerance = 1e-6
)

// Weights maps agent name to its ensemble coefficient.
type Weights map[string]float64

// Default returns the built-in weight allocation, matching the agents'
// individual default coefficients.
func Default() Weights {
	return Weights{
		"speed":        0.40,
		"adaptability": 0.30,
		"pedigree":     0.30,
	}
}

// Clone returns an independent copy.
func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	for name, value := range w {
		out[name] = value
	}
	return out
}

// Names returns the agent names in deterministic order.
func (w Weights) Names() []string {
	names := make([]string, 0, len(w))
	for name := range w {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sum totals the coefficients in deterministic order.
func (w Weights) Sum() float64 {
	var sum float64
	for _, name := range w.Names() {
		sum += w[name]
	}
	return sum
}

// Clamp restricts every coefficient to [MinWeight, MaxWeight].
func (w Weights) Clamp() Weights {
	out := w.Clone()
	for name, value := range out {
		out[name] = clamp(value, MinWeight, MaxWeight)
	}
	return out
}

// Normalize clamps every coefficient and rescales the set to sum to 1.0
// while keeping each value inside its bounds. Rescaling and re-clamping
// alternate until the sum converges; any residual is pushed into the
// coefficients that still have slack, in deterministic order.
func (w Weights) Normalize() Weights {
	if len(w) == 0 {
		return Weights{}
	}

	out := w.Clamp()
	for i := 0; i < 64; i++ {
		sum := out.Sum()
		if math.Abs(sum-1.0) <= SumTolerance {
			return out
		}
		for name, value := range out {
			out[name] = value / sum
		}
		out = out.Clamp()
	}

	diff := 1.0 - out.Sum()
	for _, name := range out.Names() {
		if math.Abs(diff) <= SumTolerance {
			break
		}
		value := out[name]
		adjusted := clamp(value+diff, MinWeight, MaxWeight)
		diff -= adjusted - value
		out[name] = adjusted
	}

	return out
}

// Validate checks the post-mutation invariant: every coefficient within
// bounds and the set summing to 1.0 within tolerance.
func (w Weights) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("empty weight set")
	}

	const eps = 1e-9
	for _, name := range w.Names() {
		value := w[name]
		if value < MinWeight-eps || value > MaxWeight+eps {
			return fmt.Errorf("weight %s (%.6f) outside bounds [%.2f, %.2f]",
				name, value, MinWeight, MaxWeight)
		}
	}

	if sum := w.Sum(); math.Abs(sum-1.0) > SumTolerance {
		return fmt.Errorf("weights sum to %.8f, must equal 1.0 within %.0e", sum, SumTolerance)
	}

	return nil
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
