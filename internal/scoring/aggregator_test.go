package scoring_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/e-dsin/maturity-sub005/internal/model"
	"github.com/e-dsin/maturity-sub005/internal/scoring"
)

func TestAggregator_ComputeFormScore(t *testing.T) {
	ctx := context.Background()

	Convey("Given a submitted form with two weighted questions", t, func() {
		forms := newFakeFormRepo(&model.Form{
			ID:              "form-1",
			QuestionnaireID: "qnr-1",
			Status:          model.FormSubmitted,
		})
		questions := newFakeQuestionRepo()
		questions.CreateQuestion(ctx, &model.Question{ID: "q1", QuestionnaireID: "qnr-1", ThematicName: "Securite", Ponderation: 3})
		questions.CreateQuestion(ctx, &model.Question{ID: "q2", QuestionnaireID: "qnr-1", ThematicName: "Gouvernance", Ponderation: 5})
		answers := newFakeAnswerRepo()

		agg := scoring.NewAggregator(forms, answers, questions)

		Convey("When both questions are answered 4 and 5", func() {
			answers.Save(ctx, &model.Answer{FormID: "form-1", QuestionID: "q1", Value: 4})
			answers.Save(ctx, &model.Answer{FormID: "form-1", QuestionID: "q2", Value: 5})

			res, err := agg.ComputeFormScore(ctx, "form-1")

			Convey("Then actual is 37 and maximum 40", func() {
				So(err, ShouldBeNil)
				So(res.Actual, ShouldEqual, 37)
				So(res.Maximum, ShouldEqual, 40)
			})

			Convey("And the thematic breakdown follows the same rule", func() {
				So(err, ShouldBeNil)
				So(res.Thematics["Securite"], ShouldResemble, model.ThematicScore{Score: 12, ScoreMax: 15})
				So(res.Thematics["Gouvernance"], ShouldResemble, model.ThematicScore{Score: 25, ScoreMax: 25})
			})
		})

		Convey("When one answer is missing", func() {
			answers.Save(ctx, &model.Answer{FormID: "form-1", QuestionID: "q1", Value: 4})

			res, err := agg.ComputeFormScore(ctx, "form-1")

			Convey("Then the missing answer contributes 0 but still counts full weight in the maximum", func() {
				So(err, ShouldBeNil)
				So(res.Actual, ShouldEqual, 12)
				So(res.Maximum, ShouldEqual, 40)
			})
		})

		Convey("When every question gets the best answer", func() {
			answers.Save(ctx, &model.Answer{FormID: "form-1", QuestionID: "q1", Value: 5})
			answers.Save(ctx, &model.Answer{FormID: "form-1", QuestionID: "q2", Value: 5})

			res, err := agg.ComputeFormScore(ctx, "form-1")

			Convey("Then actual equals maximum", func() {
				So(err, ShouldBeNil)
				So(res.Actual, ShouldEqual, res.Maximum)
			})
		})

		Convey("When an answer references a question outside the questionnaire", func() {
			answers.Save(ctx, &model.Answer{ID: "a-stray", FormID: "form-1", QuestionID: "q-foreign", Value: 3})

			_, err := agg.ComputeFormScore(ctx, "form-1")

			Convey("Then the mismatch is surfaced, not dropped", func() {
				So(errors.Is(err, scoring.ErrQuestionnaireMismatch), ShouldBeTrue)
			})
		})

		Convey("When an answer carries a corrupt value", func() {
			answers.Save(ctx, &model.Answer{FormID: "form-1", QuestionID: "q1", Value: 9})

			_, err := agg.ComputeFormScore(ctx, "form-1")
			So(errors.Is(err, scoring.ErrInvalidAnswerValue), ShouldBeTrue)
		})
	})

	Convey("Given a questionnaire with no questions", t, func() {
		forms := newFakeFormRepo(&model.Form{
			ID:              "form-empty",
			QuestionnaireID: "qnr-empty",
			Status:          model.FormSubmitted,
		})
		agg := scoring.NewAggregator(forms, newFakeAnswerRepo(), newFakeQuestionRepo())

		res, err := agg.ComputeFormScore(ctx, "form-empty")

		Convey("Then the maximum is 0 and the normalized ratio is undefined", func() {
			So(err, ShouldBeNil)
			So(res.Maximum, ShouldEqual, 0)
			_, ok := res.Normalized()
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given an unknown form id", t, func() {
		agg := scoring.NewAggregator(newFakeFormRepo(), newFakeAnswerRepo(), newFakeQuestionRepo())

		_, err := agg.ComputeFormScore(ctx, "nope")
		So(errors.Is(err, scoring.ErrFormNotFound), ShouldBeTrue)
	})

	Convey("Given a draft form", t, func() {
		forms := newFakeFormRepo(&model.Form{
			ID:              "form-draft",
			QuestionnaireID: "qnr-1",
			Status:          model.FormDraft,
		})
		agg := scoring.NewAggregator(forms, newFakeAnswerRepo(), newFakeQuestionRepo())

		_, err := agg.ComputeFormScore(ctx, "form-draft")
		So(errors.Is(err, scoring.ErrFormNotScorable), ShouldBeTrue)
	})
}
