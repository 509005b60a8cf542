package scoring

import (
	"context"
	"fmt"

	"github.com/e-dsin/maturity-sub005/internal/model"
	"github.com/e-dsin/maturity-sub005/internal/repository"
	"github.com/e-dsin/maturity-sub005/pkg/metrics"
)

// Result is the outcome of scoring one form: the achieved total, the
// theoretical ceiling, and the same pair per thematic axis.
type Result struct {
	Actual    int                            `json:"actual"`
	Maximum   int                            `json:"maximum"`
	Thematics map[string]model.ThematicScore `json:"thematics"`
}

// Normalized returns actual/maximum in [0,1]. ok is false when the
// questionnaire has no questions; the ratio is undefined then, not 0.
func (r Result) Normalized() (float64, bool) {
	if r.Maximum == 0 {
		return 0, false
	}
	return float64(r.Actual) / float64(r.Maximum), true
}

// Aggregator turns a form's recorded answers and its questionnaire's
// questions into score totals.
type Aggregator struct {
	forms     repository.FormRepo
	answers   repository.AnswerRepo
	questions repository.QuestionRepo
}

// NewAggregator creates a new score aggregator.
func NewAggregator(forms repository.FormRepo, answers repository.AnswerRepo, questions repository.QuestionRepo) *Aggregator {
	return &Aggregator{
		forms:     forms,
		answers:   answers,
		questions: questions,
	}
}

// ComputeFormScore scores one form.
//
// The actual score sums value*weight over the answers actually present;
// a missing answer contributes 0 while its question still counts full
// weight in the maximum. Incomplete submissions therefore read as low
// scores; intentional, to penalize incompleteness.
func (a *Aggregator) ComputeFormScore(ctx context.Context, formID string) (res Result, err error) {
	defer func() { metrics.ScoreComputed(err) }()

	form, err := a.forms.GetByID(ctx, formID)
	if err != nil {
		return Result{}, err
	}
	if form == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrFormNotFound, formID)
	}
	if !form.Scorable() {
		return Result{}, fmt.Errorf("%w: %s", ErrFormNotScorable, formID)
	}

	questions, err := a.questions.ListByQuestionnaire(ctx, form.QuestionnaireID)
	if err != nil {
		return Result{}, err
	}
	answers, err := a.answers.ListByForm(ctx, formID)
	if err != nil {
		return Result{}, err
	}

	return aggregate(questions, answers)
}

// aggregate is the pure core: every questionnaire question counts
// toward the maximum, answered or not, and every answer must reference
// a questionnaire question.
func aggregate(questions []*model.Question, answers []*model.Answer) (Result, error) {
	res := Result{Thematics: make(map[string]model.ThematicScore)}

	byQuestion := make(map[string]*model.Question, len(questions))
	for _, q := range questions {
		byQuestion[q.ID] = q

		max, err := MaxContribution(q.Ponderation)
		if err != nil {
			return Result{}, fmt.Errorf("question %s: %w", q.ID, err)
		}
		res.Maximum += max

		t := res.Thematics[q.ThematicName]
		t.ScoreMax += max
		res.Thematics[q.ThematicName] = t
	}

	for _, ans := range answers {
		q, ok := byQuestion[ans.QuestionID]
		if !ok {
			return Result{}, fmt.Errorf("%w: answer %s question %s", ErrQuestionnaireMismatch, ans.ID, ans.QuestionID)
		}

		c, err := Contribution(ans.Value, q.Ponderation)
		if err != nil {
			return Result{}, fmt.Errorf("answer %s: %w", ans.ID, err)
		}
		res.Actual += c

		t := res.Thematics[q.ThematicName]
		t.Score += c
		res.Thematics[q.ThematicName] = t
	}

	return res, nil
}
