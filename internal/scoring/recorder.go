package scoring

import (
	"context"
	"time"

	"github.com/e-dsin/maturity-sub005/internal/model"
	"github.com/e-dsin/maturity-sub005/internal/repository"
	"github.com/e-dsin/maturity-sub005/pkg/logger"
	"github.com/e-dsin/maturity-sub005/pkg/metrics"
)

// Recorder persists score snapshots: the live per-form path upserts,
// the batch enterprise path backfills without overwriting.
type Recorder struct {
	aggregator  *Aggregator
	forms       repository.FormRepo
	analyses    repository.AnalysisRepo
	enterprises repository.EnterpriseRepo
	log         logger.Logger
	now         func() time.Time
}

// NewRecorder creates a new historical recorder.
func NewRecorder(
	aggregator *Aggregator,
	forms repository.FormRepo,
	analyses repository.AnalysisRepo,
	enterprises repository.EnterpriseRepo,
	log logger.Logger,
) *Recorder {
	return &Recorder{
		aggregator:  aggregator,
		forms:       forms,
		analyses:    analyses,
		enterprises: enterprises,
		log:         log.Named("recorder"),
		now:         time.Now,
	}
}

// RecordFormSnapshot computes the form's score and upserts the
// (form, today) snapshot. Running twice on the same day overwrites
// rather than duplicating; the unique (formId, date) index makes the
// upsert atomic under concurrent submissions.
func (r *Recorder) RecordFormSnapshot(ctx context.Context, formID string) (*model.Analysis, error) {
	res, err := r.aggregator.ComputeFormScore(ctx, formID)
	if err != nil {
		return nil, err
	}

	form, err := r.forms.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	a := &model.Analysis{
		FormID:        formID,
		ApplicationID: form.ApplicationID,
		EnterpriseID:  form.EnterpriseID,
		ActorID:       form.ActorID,
		Date:          truncateToDay(r.now()),
		ScoreGlobal:   res.Actual,
		ScoreMax:      res.Maximum,
		Thematiques:   res.Thematics,
	}
	if err := r.analyses.UpsertSnapshot(ctx, a); err != nil {
		return nil, err
	}
	metrics.SnapshotUpserted()

	r.log.Info(ctx, "form snapshot recorded",
		logger.String("formId", formID),
		logger.Int("scoreGlobal", a.ScoreGlobal),
		logger.Int("scoreMax", a.ScoreMax))
	return a, nil
}

// BackfillEnterpriseHistory rebuilds the enterprise-level history: for
// each enterprise, analyses are grouped by calendar day and the daily
// mean of the global score inserted, skipping days that already have a
// row. Pre-existing history is never overwritten on this path; the
// batch job must not clobber manually-verified rows.
//
// Enterprises are processed independently: one failing enterprise is
// logged and skipped, the rest proceed. The return value reports
// whether the routine completed without an unrecoverable error (i.e.
// the enterprise list itself could be read).
func (r *Recorder) BackfillEnterpriseHistory(ctx context.Context) bool {
	enterprises, err := r.enterprises.List(ctx)
	if err != nil {
		r.log.Error(ctx, "backfill aborted: cannot list enterprises", logger.Error(err))
		return false
	}

	for _, e := range enterprises {
		if err := r.backfillEnterprise(ctx, e); err != nil {
			metrics.BackfillRow("failed")
			r.log.Error(ctx, "backfill failed for enterprise",
				logger.String("enterpriseId", e.ID),
				logger.String("enterprise", e.Name),
				logger.Error(err))
			continue
		}
	}
	return true
}

func (r *Recorder) backfillEnterprise(ctx context.Context, e *model.Enterprise) error {
	analyses, err := r.analyses.ListForEnterprise(ctx, e.ID)
	if err != nil {
		return err
	}

	type daily struct {
		sumGlobal float64
		sumMax    float64
		count     int
	}
	days := make(map[time.Time]*daily)
	var order []time.Time
	for _, a := range analyses {
		day := truncateToDay(a.Date)
		d, ok := days[day]
		if !ok {
			d = &daily{}
			days[day] = d
			order = append(order, day)
		}
		d.sumGlobal += float64(a.ScoreGlobal)
		d.sumMax += float64(a.ScoreMax)
		d.count++
	}

	// Dated groups are written sequentially so the skip-if-exists
	// checks stay reproducible across runs.
	for _, day := range order {
		d := days[day]
		inserted, err := r.analyses.InsertHistoryIfAbsent(ctx, &model.HistoricalScore{
			EnterpriseID: e.ID,
			Date:         day,
			ScoreGlobal:  d.sumGlobal / float64(d.count),
			ScoreMax:     d.sumMax / float64(d.count),
		})
		if err != nil {
			return err
		}
		if inserted {
			metrics.BackfillRow("written")
		} else {
			metrics.BackfillRow("skipped")
		}
	}
	return nil
}

// truncateToDay drops the time-of-day component, in UTC, so snapshots
// key on calendar dates.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
