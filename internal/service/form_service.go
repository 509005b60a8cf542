package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/e-dsin/maturity-sub005/internal/access"
	"github.com/e-dsin/maturity-sub005/internal/cache"
	"github.com/e-dsin/maturity-sub005/internal/model"
	"github.com/e-dsin/maturity-sub005/internal/repository"
	"github.com/e-dsin/maturity-sub005/internal/scoring"
	"github.com/e-dsin/maturity-sub005/pkg/logger"
)

var (
	ErrFormNotDraft     = errors.New("form is not editable")
	ErrFormNotSubmitted = errors.New("form is not submitted")
	ErrInvalidStatus    = errors.New("invalid lifecycle transition")
)

// FormService manages the form lifecycle. Submitting a form triggers
// the score snapshot; validation is terminal.
type FormService struct {
	forms      repository.FormRepo
	answers    repository.AnswerRepo
	questions  repository.QuestionRepo
	recorder   *scoring.Recorder
	scoreCache cache.ScoreCache
	engine     *access.Engine
	log        logger.Logger
}

// NewFormService creates a new form service.
func NewFormService(
	forms repository.FormRepo,
	answers repository.AnswerRepo,
	questions repository.QuestionRepo,
	recorder *scoring.Recorder,
	scoreCache cache.ScoreCache,
	engine *access.Engine,
	log logger.Logger,
) *FormService {
	return &FormService{
		forms:      forms,
		answers:    answers,
		questions:  questions,
		recorder:   recorder,
		scoreCache: scoreCache,
		engine:     engine,
		log:        log.Named("forms"),
	}
}

// Create opens a new draft form for the principal.
func (s *FormService) Create(ctx context.Context, p access.Principal, form *model.Form) (string, error) {
	d := s.engine.Authorize(ctx, p, access.ModuleFormulaires, access.ActionEditer)
	if !d.Allowed {
		return "", denied(d)
	}

	form.ActorID = p.ActorID
	if form.EnterpriseID == "" || !d.Filter.Global {
		form.EnterpriseID = p.EnterpriseID
	}
	form.Status = model.FormDraft
	return s.forms.Create(ctx, form)
}

// Get loads one form, enforcing the principal's data filter.
func (s *FormService) Get(ctx context.Context, p access.Principal, formID string) (*model.Form, error) {
	d := s.engine.AuthorizeResource(ctx, p, access.ModuleFormulaires, access.ActionConsulter, formID)
	if !d.Allowed {
		return nil, denied(d)
	}

	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, fmt.Errorf("%w: %s", scoring.ErrFormNotFound, formID)
	}
	if !formVisible(form, d.Filter) {
		return nil, outOfScope()
	}
	return form, nil
}

// List returns the forms visible under the principal's data filter.
func (s *FormService) List(ctx context.Context, p access.Principal) ([]*model.Form, error) {
	d := s.engine.Authorize(ctx, p, access.ModuleFormulaires, access.ActionConsulter)
	if !d.Allowed {
		return nil, denied(d)
	}
	return s.forms.List(ctx, filterToBson(d.Filter))
}

// SaveAnswer records one answer on a draft form. The question must
// belong to the form's questionnaire; an answer referencing a foreign
// question is a data integrity violation and is rejected.
func (s *FormService) SaveAnswer(ctx context.Context, p access.Principal, formID, questionID string, value int, commentary string) error {
	form, err := s.editableForm(ctx, p, formID)
	if err != nil {
		return err
	}

	if value < model.MinAnswerValue || value > model.MaxAnswerValue {
		return fmt.Errorf("%w: got %d", scoring.ErrInvalidAnswerValue, value)
	}

	questions, err := s.questions.ListByQuestionnaire(ctx, form.QuestionnaireID)
	if err != nil {
		return err
	}
	known := false
	for _, q := range questions {
		if q.ID == questionID {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: question %s", scoring.ErrQuestionnaireMismatch, questionID)
	}

	return s.answers.Save(ctx, &model.Answer{
		FormID:     formID,
		QuestionID: questionID,
		Value:      value,
		Commentary: commentary,
	})
}

// Submit moves a draft form to submitted and records its first score
// snapshot.
func (s *FormService) Submit(ctx context.Context, p access.Principal, formID string) (*model.Analysis, error) {
	form, err := s.editableForm(ctx, p, formID)
	if err != nil {
		return nil, err
	}
	if form.Status != model.FormDraft {
		return nil, fmt.Errorf("%w: %s is %s", ErrInvalidStatus, formID, form.Status)
	}

	if err := s.forms.UpdateStatus(ctx, formID, model.FormSubmitted, time.Now()); err != nil {
		return nil, err
	}

	analysis, err := s.recorder.RecordFormSnapshot(ctx, formID)
	if err != nil {
		return nil, err
	}
	if err := s.scoreCache.SetFormAnalysis(ctx, analysis); err != nil {
		s.log.Warn(ctx, "score cache update failed",
			logger.String("formId", formID), logger.Error(err))
	}

	s.log.Info(ctx, "form submitted",
		logger.String("formId", formID), logger.String("actorId", p.ActorID))
	return analysis, nil
}

// Validate moves a submitted form to validated, terminal for scoring.
func (s *FormService) Validate(ctx context.Context, p access.Principal, formID string) error {
	d := s.engine.AuthorizeResource(ctx, p, access.ModuleFormulaires, access.ActionEditer, formID)
	if !d.Allowed {
		return denied(d)
	}

	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		return err
	}
	if form == nil {
		return fmt.Errorf("%w: %s", scoring.ErrFormNotFound, formID)
	}
	if !formVisible(form, d.Filter) {
		return outOfScope()
	}
	if form.Status != model.FormSubmitted {
		return fmt.Errorf("%w: %s is %s", ErrInvalidStatus, formID, form.Status)
	}

	return s.forms.UpdateStatus(ctx, formID, model.FormValidated, time.Now())
}

func (s *FormService) editableForm(ctx context.Context, p access.Principal, formID string) (*model.Form, error) {
	d := s.engine.AuthorizeResource(ctx, p, access.ModuleFormulaires, access.ActionEditer, formID)
	if !d.Allowed {
		return nil, denied(d)
	}

	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, fmt.Errorf("%w: %s", scoring.ErrFormNotFound, formID)
	}
	if !formVisible(form, d.Filter) {
		return nil, outOfScope()
	}
	return form, nil
}

// formVisible applies the data filter to one already-loaded form.
func formVisible(form *model.Form, f access.DataFilter) bool {
	if f.Global {
		return true
	}
	if form.EnterpriseID != f.EnterpriseID {
		return false
	}
	return f.ActorID == "" || form.ActorID == f.ActorID
}
