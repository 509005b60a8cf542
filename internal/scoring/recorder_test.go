package scoring_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/e-dsin/maturity-sub005/internal/model"
	"github.com/e-dsin/maturity-sub005/internal/scoring"
	"github.com/e-dsin/maturity-sub005/pkg/logger"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestRecorder_RecordFormSnapshot(t *testing.T) {
	ctx := context.Background()

	Convey("Given a submitted form with recorded answers", t, func() {
		forms := newFakeFormRepo(&model.Form{
			ID:              "form-1",
			QuestionnaireID: "qnr-1",
			ApplicationID:   "app-1",
			EnterpriseID:    "ent-1",
			ActorID:         "actor-1",
			Status:          model.FormSubmitted,
		})
		questions := newFakeQuestionRepo()
		questions.CreateQuestion(ctx, &model.Question{ID: "q1", QuestionnaireID: "qnr-1", ThematicName: "Securite", Ponderation: 3})
		answers := newFakeAnswerRepo()
		answers.Save(ctx, &model.Answer{FormID: "form-1", QuestionID: "q1", Value: 4})
		analyses := newFakeAnalysisRepo()

		agg := scoring.NewAggregator(forms, answers, questions)
		rec := scoring.NewRecorder(agg, forms, analyses, &fakeEnterpriseRepo{}, logger.Nop())

		Convey("When the snapshot is recorded twice on the same day", func() {
			first, err := rec.RecordFormSnapshot(ctx, "form-1")
			So(err, ShouldBeNil)

			answers.Save(ctx, &model.Answer{FormID: "form-1", QuestionID: "q1", Value: 5})
			second, err := rec.RecordFormSnapshot(ctx, "form-1")
			So(err, ShouldBeNil)

			Convey("Then exactly one row exists, holding the latest values", func() {
				So(len(analyses.snapshots), ShouldEqual, 1)
				So(second.Date.Equal(first.Date), ShouldBeTrue)
				stored := analyses.snapshots[snapshotKey("form-1", second.Date)]
				So(stored.ScoreGlobal, ShouldEqual, 5*3)
				So(stored.ScoreMax, ShouldEqual, 15)
			})

			Convey("And the snapshot carries the form's ownership for filtering", func() {
				So(second.EnterpriseID, ShouldEqual, "ent-1")
				So(second.ActorID, ShouldEqual, "actor-1")
			})
		})

		Convey("When the snapshot is recorded", func() {
			a, err := rec.RecordFormSnapshot(ctx, "form-1")
			So(err, ShouldBeNil)

			Convey("Then the date is truncated to the calendar day", func() {
				So(a.Date.Hour(), ShouldEqual, 0)
				So(a.Date.Minute(), ShouldEqual, 0)
				So(a.Date.Location(), ShouldEqual, time.UTC)
			})

			Convey("And the score invariant holds", func() {
				So(a.ScoreGlobal, ShouldBeLessThanOrEqualTo, a.ScoreMax)
			})
		})
	})
}

func TestRecorder_BackfillEnterpriseHistory(t *testing.T) {
	ctx := context.Background()

	Convey("Given two enterprises with analyses across days", t, func() {
		enterprises := &fakeEnterpriseRepo{enterprises: []*model.Enterprise{
			{ID: "ent-1", Name: "Acme"},
			{ID: "ent-2", Name: "Globex"},
		}}
		analyses := newFakeAnalysisRepo()
		analyses.analyses["ent-1"] = []*model.Analysis{
			{FormID: "f1", EnterpriseID: "ent-1", Date: day("2026-08-01").Add(9 * time.Hour), ScoreGlobal: 30, ScoreMax: 40},
			{FormID: "f2", EnterpriseID: "ent-1", Date: day("2026-08-01").Add(15 * time.Hour), ScoreGlobal: 50, ScoreMax: 40},
			{FormID: "f3", EnterpriseID: "ent-1", Date: day("2026-08-02"), ScoreGlobal: 20, ScoreMax: 40},
		}
		analyses.analyses["ent-2"] = []*model.Analysis{
			{FormID: "f4", EnterpriseID: "ent-2", Date: day("2026-08-01"), ScoreGlobal: 10, ScoreMax: 40},
		}

		rec := scoring.NewRecorder(nil, nil, analyses, enterprises, logger.Nop())

		Convey("When the backfill runs", func() {
			ok := rec.BackfillEnterpriseHistory(ctx)

			Convey("Then same-day analyses are averaged into one row per day", func() {
				So(ok, ShouldBeTrue)
				So(len(analyses.history), ShouldEqual, 3)
				So(analyses.history[historyKey("ent-1", day("2026-08-01"))].ScoreGlobal, ShouldEqual, 40.0)
				So(analyses.history[historyKey("ent-1", day("2026-08-02"))].ScoreGlobal, ShouldEqual, 20.0)
				So(analyses.history[historyKey("ent-2", day("2026-08-01"))].ScoreGlobal, ShouldEqual, 10.0)
			})
		})

		Convey("When the backfill runs twice", func() {
			So(rec.BackfillEnterpriseHistory(ctx), ShouldBeTrue)
			firstRun := analyses.history[historyKey("ent-1", day("2026-08-01"))]

			So(rec.BackfillEnterpriseHistory(ctx), ShouldBeTrue)

			Convey("Then the row count does not change and rows are not overwritten", func() {
				So(len(analyses.history), ShouldEqual, 3)
				So(analyses.history[historyKey("ent-1", day("2026-08-01"))], ShouldEqual, firstRun)
			})
		})

		Convey("When pre-existing history rows are present", func() {
			manual := &model.HistoricalScore{EnterpriseID: "ent-1", Date: day("2026-08-01"), ScoreGlobal: 99}
			analyses.history[historyKey("ent-1", day("2026-08-01"))] = manual

			So(rec.BackfillEnterpriseHistory(ctx), ShouldBeTrue)

			Convey("Then the batch path never clobbers them", func() {
				So(analyses.history[historyKey("ent-1", day("2026-08-01"))], ShouldEqual, manual)
			})
		})

		Convey("When one enterprise's analyses cannot be read", func() {
			analyses.failListFor["ent-1"] = true

			ok := rec.BackfillEnterpriseHistory(ctx)

			Convey("Then the others are still processed and the run reports success", func() {
				So(ok, ShouldBeTrue)
				So(len(analyses.history), ShouldEqual, 1)
				So(analyses.history[historyKey("ent-2", day("2026-08-01"))], ShouldNotBeNil)
			})
		})
	})
}
