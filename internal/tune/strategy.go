package tune

import (
	"github.com/uma-logic-user/uma-logic-sub000/internal/tune/weights"
)

// Objective scores a candidate weight set; higher is better. For this
// engine the objective is the training-set recovery rate.
type Objective func(weights.Weights) float64

// Strategy searches the weight space for the best objective value. The
// greedy hill climb is the documented default; the interface keeps the
// search swappable (simulated annealing, coordinate descent) without
// touching the backtester or the data model.
type Strategy interface {
	Name() string

	// Search starts from initial and returns the best weights found with
	// their objective value. Implementations must return normalized
	// weights satisfying weights.Validate.
	Search(initial weights.Weights, objective Objective) (weights.Weights, float64)
}
