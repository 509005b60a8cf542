package scoring

import (
	"fmt"

	"github.com/e-dsin/maturity-sub005/internal/model"
)

// Contribution converts one raw answer value and its question weight
// into a score contribution. This is intentionally the only place the
// ordinal scaling lives: rescaling the 1-5 scale means changing exactly
// this function.
func Contribution(value, weight int) (int, error) {
	if value < model.MinAnswerValue || value > model.MaxAnswerValue {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidAnswerValue, value)
	}
	if weight < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidWeight, weight)
	}
	return value * weight, nil
}

// MaxContribution is the theoretical ceiling for one question: the
// best possible answer times its weight.
func MaxContribution(weight int) (int, error) {
	return Contribution(model.MaxAnswerValue, weight)
}
