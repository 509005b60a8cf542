package service

import (
	"context"
	"fmt"

	"github.com/e-dsin/maturity-sub005/internal/access"
	"github.com/e-dsin/maturity-sub005/internal/cache"
	"github.com/e-dsin/maturity-sub005/internal/model"
	"github.com/e-dsin/maturity-sub005/internal/repository"
	"github.com/e-dsin/maturity-sub005/internal/scoring"
	"github.com/e-dsin/maturity-sub005/pkg/logger"
)

// ScoreService exposes score reads. Every query is narrowed by the
// caller's data filter before it reaches the repository.
type ScoreService struct {
	aggregator *scoring.Aggregator
	analyses   repository.AnalysisRepo
	forms      repository.FormRepo
	scoreCache cache.ScoreCache
	engine     *access.Engine
	log        logger.Logger
}

// NewScoreService creates a new score service.
func NewScoreService(
	aggregator *scoring.Aggregator,
	analyses repository.AnalysisRepo,
	forms repository.FormRepo,
	scoreCache cache.ScoreCache,
	engine *access.Engine,
	log logger.Logger,
) *ScoreService {
	return &ScoreService{
		aggregator: aggregator,
		analyses:   analyses,
		forms:      forms,
		scoreCache: scoreCache,
		engine:     engine,
		log:        log.Named("scores"),
	}
}

// ComputeFormScore recomputes a form's score from its current answers,
// without persisting anything.
func (s *ScoreService) ComputeFormScore(ctx context.Context, p access.Principal, formID string) (scoring.Result, error) {
	d := s.engine.AuthorizeResource(ctx, p, access.ModuleAnalyses, access.ActionConsulter, formID)
	if !d.Allowed {
		return scoring.Result{}, denied(d)
	}
	if err := s.checkFormScope(ctx, formID, d.Filter); err != nil {
		return scoring.Result{}, err
	}
	return s.aggregator.ComputeFormScore(ctx, formID)
}

// GetFormAnalysis returns the latest persisted snapshot for a form,
// trying the cache first.
func (s *ScoreService) GetFormAnalysis(ctx context.Context, p access.Principal, formID string) (*model.Analysis, error) {
	d := s.engine.AuthorizeResource(ctx, p, access.ModuleAnalyses, access.ActionConsulter, formID)
	if !d.Allowed {
		return nil, denied(d)
	}
	if err := s.checkFormScope(ctx, formID, d.Filter); err != nil {
		return nil, err
	}

	if a, err := s.scoreCache.GetFormAnalysis(ctx, formID); err == nil && a != nil {
		return a, nil
	}

	a, err := s.analyses.LatestForForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	if a != nil {
		if err := s.scoreCache.SetFormAnalysis(ctx, a); err != nil {
			s.log.Warn(ctx, "score cache update failed",
				logger.String("formId", formID), logger.Error(err))
		}
	}
	return a, nil
}

// ListAnalyses returns the snapshots visible under the principal's
// data filter.
func (s *ScoreService) ListAnalyses(ctx context.Context, p access.Principal) ([]*model.Analysis, error) {
	d := s.engine.Authorize(ctx, p, access.ModuleAnalyses, access.ActionConsulter)
	if !d.Allowed {
		return nil, denied(d)
	}
	return s.analyses.List(ctx, filterToBson(d.Filter))
}

// ListEnterpriseHistory returns the enterprise's historical score
// series. Non-global principals may only read their own enterprise.
func (s *ScoreService) ListEnterpriseHistory(ctx context.Context, p access.Principal, enterpriseID string) ([]*model.HistoricalScore, error) {
	d := s.engine.AuthorizeResource(ctx, p, access.ModuleAnalyses, access.ActionConsulter, enterpriseID)
	if !d.Allowed {
		return nil, denied(d)
	}
	if !d.Filter.Global && d.Filter.EnterpriseID != enterpriseID {
		return nil, outOfScope()
	}
	return s.analyses.ListHistory(ctx, enterpriseID)
}

func (s *ScoreService) checkFormScope(ctx context.Context, formID string, f access.DataFilter) error {
	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		return err
	}
	if form == nil {
		return fmt.Errorf("%w: %s", scoring.ErrFormNotFound, formID)
	}
	if !formVisible(form, f) {
		return outOfScope()
	}
	return nil
}
