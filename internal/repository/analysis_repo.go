package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/e-dsin/maturity-sub005/internal/model"
)

// AnalysisRepo handles MongoDB operations for score snapshots and
// enterprise history. The live path upserts per (form, date); the batch
// path inserts per (enterprise, date) only when absent. The asymmetry
// is deliberate and kept as two named operations.
type AnalysisRepo interface {
	UpsertSnapshot(ctx context.Context, a *model.Analysis) error
	List(ctx context.Context, filter bson.M) ([]*model.Analysis, error)
	ListForEnterprise(ctx context.Context, enterpriseID string) ([]*model.Analysis, error)
	LatestForForm(ctx context.Context, formID string) (*model.Analysis, error)

	InsertHistoryIfAbsent(ctx context.Context, h *model.HistoricalScore) (bool, error)
	ListHistory(ctx context.Context, enterpriseID string) ([]*model.HistoricalScore, error)

	EnsureIndexes(ctx context.Context) error
}

type analysisRepo struct {
	analyses   *mongo.Collection
	historique *mongo.Collection
}

// NewAnalysisRepo creates a new analysis repository.
func NewAnalysisRepo(db *mongo.Database) AnalysisRepo {
	return &analysisRepo{
		analyses:   db.Collection("analyses"),
		historique: db.Collection("historique_scores"),
	}
}

// EnsureIndexes creates the unique keys the upsert and insert-if-absent
// contracts rely on: one analysis per (form, date), one history row per
// (enterprise, date). Concurrent writers for the same key converge on a
// single row instead of duplicating.
func (r *analysisRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.analyses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "formId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = r.historique.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "enterpriseId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *analysisRepo) UpsertSnapshot(ctx context.Context, a *model.Analysis) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.analyses.ReplaceOne(ctx, bson.M{
		"formId": a.FormID,
		"date":   a.Date,
	}, a, opts)
	return err
}

func (r *analysisRepo) List(ctx context.Context, filter bson.M) ([]*model.Analysis, error) {
	opts := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := r.analyses.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var analyses []*model.Analysis
	if err := cursor.All(ctx, &analyses); err != nil {
		return nil, err
	}
	return analyses, nil
}

func (r *analysisRepo) ListForEnterprise(ctx context.Context, enterpriseID string) ([]*model.Analysis, error) {
	return r.List(ctx, bson.M{"enterpriseId": enterpriseID})
}

func (r *analysisRepo) LatestForForm(ctx context.Context, formID string) (*model.Analysis, error) {
	opts := options.FindOne().SetSort(bson.M{"date": -1})
	var a model.Analysis
	err := r.analyses.FindOne(ctx, bson.M{"formId": formID}, opts).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// InsertHistoryIfAbsent inserts one history row, reporting false when a
// row for the same (enterprise, date) already exists. Pre-existing
// rows are never overwritten on this path.
func (r *analysisRepo) InsertHistoryIfAbsent(ctx context.Context, h *model.HistoricalScore) (bool, error) {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}

	_, err := r.historique.InsertOne(ctx, h)
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *analysisRepo) ListHistory(ctx context.Context, enterpriseID string) ([]*model.HistoricalScore, error) {
	opts := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := r.historique.Find(ctx, bson.M{"enterpriseId": enterpriseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var history []*model.HistoricalScore
	if err := cursor.All(ctx, &history); err != nil {
		return nil, err
	}
	return history, nil
}
