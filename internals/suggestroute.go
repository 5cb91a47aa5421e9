package internals

import (
	"errors"

	"github.com/MikuMikuMe/green-travel-planner/model"
)

// ErrEmptyReport is returned when there is no emission value to compare.
// Not reachable through the sampler, which always produces three modes.
var ErrEmptyReport = errors.New("empty emissions report")

// SuggestRoute returns the mode with the lowest emission value. Modes
// are scanned in model.Modes() order, so a tie keeps the earlier mode.
func SuggestRoute(report model.EmissionsReport) (model.Mode, error) {
	if len(report) == 0 {
		return "", ErrEmptyReport
	}

	var optimalMode model.Mode
	found := false
	for _, mode := range model.Modes() {
		emission, ok := report[mode]
		if !ok {
			continue
		}
		if !found || emission < report[optimalMode] {
			optimalMode = mode
			found = true
		}
	}
	if !found {
		return "", ErrEmptyReport
	}

	return optimalMode, nil
}
