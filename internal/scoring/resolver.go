package scoring

import (
	"context"

	"github.com/e-dsin/maturity-sub005/internal/model"
)

// FonctionGlobal is the grid function name for the global score; the
// thematic axes use their own names.
const FonctionGlobal = "global"

// GridSource lists grid entries for one function in definition order.
// Satisfied by the mongo grid repository and by the redis cache in
// front of it.
type GridSource interface {
	ListEntries(ctx context.Context, fonction string) ([]*model.GridEntry, error)
}

// Resolver maps a numeric score to a qualitative grid entry.
type Resolver struct {
	grid GridSource
}

// NewResolver creates a new interpretation resolver.
func NewResolver(grid GridSource) *Resolver {
	return &Resolver{grid: grid}
}

// Interpret returns the first grid entry whose range contains the
// score, in grid-definition order. Overlapping ranges are a grid
// configuration error; first match wins rather than arbitrating. A nil
// entry (with nil error) means no range contains the score: callers
// render a neutral placeholder, the response does not fail.
func (r *Resolver) Interpret(ctx context.Context, fonction string, score float64) (*model.GridEntry, error) {
	entries, err := r.grid.ListEntries(ctx, fonction)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Contains(score) {
			return e, nil
		}
	}
	return nil, nil
}
