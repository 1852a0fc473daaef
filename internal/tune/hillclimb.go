package tune

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/uma-logic-user/uma-logic-sub000/internal/tune/weights"
)

// HillClimb is a greedy random-perturbation search: each iteration perturbs
// every coefficient of the current best by an independent uniform delta in
// [-step, +step], renormalizes, and adopts the candidate only on strict
// improvement. No restarts, no cooling.
type HillClimb struct {
	iterations int
	step       float64
	rng        *rand.Rand

	// onEvaluation, when set, observes every objective evaluation.
	onEvaluation func(objective float64, improved bool)
}

// NewHillClimb creates a hill-climb strategy. The random source is injected
// so callers control seeding; fixed seeds give reproducible trajectories.
func NewHillClimb(iterations int, step float64, rng *rand.Rand) *HillClimb {
	if iterations < 1 {
		iterations = 1
	}
	if step <= 0 {
		step = 0.1
	}
	return &HillClimb{iterations: iterations, step: step, rng: rng}
}

// OnEvaluation registers an observer for objective evaluations.
func (h *HillClimb) OnEvaluation(fn func(objective float64, improved bool)) {
	h.onEvaluation = fn
}

func (h *HillClimb) Name() string { return "hill_climb" }

// Search runs the fixed iteration budget. Weight names are visited in
// sorted order so that a fixed seed consumes random draws identically run
// to run.
func (h *HillClimb) Search(initial weights.Weights, objective Objective) (weights.Weights, float64) {
	best := initial.Normalize()
	bestScore := math.Inf(-1)

	for i := 0; i < h.iterations; i++ {
		candidate := h.perturb(best)
		score := objective(candidate)

		improved := score > bestScore
		if improved {
			best = candidate
			bestScore = score
			log.Debug().
				Int("iteration", i+1).
				Float64("objective", score).
				Msg("Hill climb adopted candidate")
		}

		if h.onEvaluation != nil {
			h.onEvaluation(score, improved)
		}
	}

	return best, bestScore
}

func (h *HillClimb) perturb(base weights.Weights) weights.Weights {
	candidate := base.Clone()
	for _, name := range base.Names() {
		delta := (h.rng.Float64()*2 - 1) * h.step
		candidate[name] = base[name] + delta
	}
	return candidate.Normalize()
}
