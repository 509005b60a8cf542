package service

import (
	"context"

	"github.com/e-dsin/maturity-sub005/internal/access"
	"github.com/e-dsin/maturity-sub005/internal/model"
	"github.com/e-dsin/maturity-sub005/internal/scoring"
	"github.com/e-dsin/maturity-sub005/pkg/logger"
)

// Interpretation is one resolved grid entry, or a neutral placeholder
// when no range contained the score.
type Interpretation struct {
	Fonction  string           `json:"fonction"`
	Score     float64          `json:"score"`
	Available bool             `json:"available"`
	Entry     *model.GridEntry `json:"entry,omitempty"`
}

// FormInterpretation is the full read-path response: global plus
// per-thematic interpretations of a form's latest snapshot.
type FormInterpretation struct {
	FormID    string           `json:"formId"`
	Global    Interpretation   `json:"global"`
	Thematics []Interpretation `json:"thematics"`
}

// InterpretationService resolves scores against the grading grid.
type InterpretationService struct {
	resolver *scoring.Resolver
	scores   *ScoreService
	engine   *access.Engine
	log      logger.Logger
}

// NewInterpretationService creates a new interpretation service.
func NewInterpretationService(resolver *scoring.Resolver, scores *ScoreService, engine *access.Engine, log logger.Logger) *InterpretationService {
	return &InterpretationService{
		resolver: resolver,
		scores:   scores,
		engine:   engine,
		log:      log.Named("interpretation"),
	}
}

// Interpret resolves one (function, score) pair. A nil entry is not an
// error; Available reports the miss.
func (s *InterpretationService) Interpret(ctx context.Context, p access.Principal, fonction string, score float64) (Interpretation, error) {
	d := s.engine.Authorize(ctx, p, access.ModuleInterpretation, access.ActionConsulter)
	if !d.Allowed {
		return Interpretation{}, denied(d)
	}
	return s.interpret(ctx, fonction, score)
}

// InterpretForm resolves the global and per-thematic interpretations
// for a form's latest persisted snapshot.
func (s *InterpretationService) InterpretForm(ctx context.Context, p access.Principal, formID string) (*FormInterpretation, error) {
	d := s.engine.AuthorizeResource(ctx, p, access.ModuleInterpretation, access.ActionConsulter, formID)
	if !d.Allowed {
		return nil, denied(d)
	}

	analysis, err := s.scores.GetFormAnalysis(ctx, p, formID)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, nil
	}

	out := &FormInterpretation{FormID: formID}
	out.Global, err = s.interpret(ctx, scoring.FonctionGlobal, float64(analysis.ScoreGlobal))
	if err != nil {
		return nil, err
	}

	for name, t := range analysis.Thematiques {
		ti, err := s.interpret(ctx, name, float64(t.Score))
		if err != nil {
			return nil, err
		}
		out.Thematics = append(out.Thematics, ti)
	}
	return out, nil
}

func (s *InterpretationService) interpret(ctx context.Context, fonction string, score float64) (Interpretation, error) {
	entry, err := s.resolver.Interpret(ctx, fonction, score)
	if err != nil {
		return Interpretation{}, err
	}
	if entry == nil {
		s.log.Debug(ctx, "no grid range contains score",
			logger.String("fonction", fonction), logger.Float64("score", score))
	}
	return Interpretation{
		Fonction:  fonction,
		Score:     score,
		Available: entry != nil,
		Entry:     entry,
	}, nil
}
