package scoring_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/e-dsin/maturity-sub005/internal/model"
)

// In-memory repository fakes. Keys follow the same uniqueness rules as
// the mongo indexes so the upsert and insert-if-absent semantics can
// be asserted on row counts.

type fakeFormRepo struct {
	forms map[string]*model.Form
}

func newFakeFormRepo(forms ...*model.Form) *fakeFormRepo {
	r := &fakeFormRepo{forms: make(map[string]*model.Form)}
	for _, f := range forms {
		r.forms[f.ID] = f
	}
	return r
}

func (r *fakeFormRepo) Create(_ context.Context, f *model.Form) (string, error) {
	r.forms[f.ID] = f
	return f.ID, nil
}

func (r *fakeFormRepo) GetByID(_ context.Context, id string) (*model.Form, error) {
	return r.forms[id], nil
}

func (r *fakeFormRepo) List(context.Context, bson.M) ([]*model.Form, error) {
	var out []*model.Form
	for _, f := range r.forms {
		out = append(out, f)
	}
	return out, nil
}

func (r *fakeFormRepo) UpdateStatus(_ context.Context, id string, status model.FormStatus, _ time.Time) error {
	if f, ok := r.forms[id]; ok {
		f.Status = status
	}
	return nil
}

type fakeAnswerRepo struct {
	answers map[string][]*model.Answer
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: make(map[string][]*model.Answer)}
}

// Save mirrors the mongo repository's replace-on-(form, question)
// upsert so re-answering does not duplicate.
func (r *fakeAnswerRepo) Save(_ context.Context, a *model.Answer) error {
	for i, existing := range r.answers[a.FormID] {
		if existing.QuestionID == a.QuestionID {
			r.answers[a.FormID][i] = a
			return nil
		}
	}
	r.answers[a.FormID] = append(r.answers[a.FormID], a)
	return nil
}

func (r *fakeAnswerRepo) ListByForm(_ context.Context, formID string) ([]*model.Answer, error) {
	return r.answers[formID], nil
}

type fakeQuestionRepo struct {
	questions map[string][]*model.Question
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[string][]*model.Question)}
}

func (r *fakeQuestionRepo) CreateQuestionnaire(_ context.Context, q *model.Questionnaire) (string, error) {
	return q.ID, nil
}

func (r *fakeQuestionRepo) GetQuestionnaire(context.Context, string) (*model.Questionnaire, error) {
	return nil, nil
}

func (r *fakeQuestionRepo) CreateQuestion(_ context.Context, q *model.Question) (string, error) {
	r.questions[q.QuestionnaireID] = append(r.questions[q.QuestionnaireID], q)
	return q.ID, nil
}

func (r *fakeQuestionRepo) ListByQuestionnaire(_ context.Context, questionnaireID string) ([]*model.Question, error) {
	return r.questions[questionnaireID], nil
}

type fakeAnalysisRepo struct {
	snapshots map[string]*model.Analysis
	history   map[string]*model.HistoricalScore
	analyses  map[string][]*model.Analysis

	failListFor map[string]bool
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{
		snapshots:   make(map[string]*model.Analysis),
		history:     make(map[string]*model.HistoricalScore),
		analyses:    make(map[string][]*model.Analysis),
		failListFor: make(map[string]bool),
	}
}

func snapshotKey(formID string, date time.Time) string {
	return fmt.Sprintf("%s|%s", formID, date.Format("2006-01-02"))
}

func historyKey(enterpriseID string, date time.Time) string {
	return fmt.Sprintf("%s|%s", enterpriseID, date.Format("2006-01-02"))
}

func (r *fakeAnalysisRepo) UpsertSnapshot(_ context.Context, a *model.Analysis) error {
	r.snapshots[snapshotKey(a.FormID, a.Date)] = a
	return nil
}

func (r *fakeAnalysisRepo) List(context.Context, bson.M) ([]*model.Analysis, error) {
	return nil, nil
}

func (r *fakeAnalysisRepo) ListForEnterprise(_ context.Context, enterpriseID string) ([]*model.Analysis, error) {
	if r.failListFor[enterpriseID] {
		return nil, errors.New("storage unavailable")
	}
	return r.analyses[enterpriseID], nil
}

func (r *fakeAnalysisRepo) LatestForForm(context.Context, string) (*model.Analysis, error) {
	return nil, nil
}

func (r *fakeAnalysisRepo) InsertHistoryIfAbsent(_ context.Context, h *model.HistoricalScore) (bool, error) {
	key := historyKey(h.EnterpriseID, h.Date)
	if _, exists := r.history[key]; exists {
		return false, nil
	}
	r.history[key] = h
	return true, nil
}

func (r *fakeAnalysisRepo) ListHistory(_ context.Context, enterpriseID string) ([]*model.HistoricalScore, error) {
	var out []*model.HistoricalScore
	for _, h := range r.history {
		if h.EnterpriseID == enterpriseID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeAnalysisRepo) EnsureIndexes(context.Context) error { return nil }

type fakeEnterpriseRepo struct {
	enterprises []*model.Enterprise
}

func (r *fakeEnterpriseRepo) Create(_ context.Context, e *model.Enterprise) (string, error) {
	r.enterprises = append(r.enterprises, e)
	return e.ID, nil
}

func (r *fakeEnterpriseRepo) GetByID(context.Context, string) (*model.Enterprise, error) {
	return nil, nil
}

func (r *fakeEnterpriseRepo) List(context.Context) ([]*model.Enterprise, error) {
	return r.enterprises, nil
}

func (r *fakeEnterpriseRepo) CreateApplication(context.Context, *model.Application) (string, error) {
	return "", nil
}

func (r *fakeEnterpriseRepo) ListApplications(context.Context, string) ([]*model.Application, error) {
	return nil, nil
}

type fakeGridSource struct {
	entries map[string][]*model.GridEntry
}

func (g *fakeGridSource) ListEntries(_ context.Context, fonction string) ([]*model.GridEntry, error) {
	return g.entries[fonction], nil
}
