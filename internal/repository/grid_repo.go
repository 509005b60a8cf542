package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/e-dsin/maturity-sub005/internal/model"
)

// GridRepo handles MongoDB operations for the interpretation grid.
type GridRepo interface {
	Create(ctx context.Context, entry *model.GridEntry) (string, error)
	ListEntries(ctx context.Context, fonction string) ([]*model.GridEntry, error)
}

type gridRepo struct {
	collection *mongo.Collection
}

// NewGridRepo creates a new grid repository.
func NewGridRepo(db *mongo.Database) GridRepo {
	return &gridRepo{
		collection: db.Collection("grille_interpretation"),
	}
}

func (r *gridRepo) Create(ctx context.Context, entry *model.GridEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

// ListEntries returns the grid rows for one function in definition
// order. The resolver's first-match-wins rule depends on this ordering.
func (r *gridRepo) ListEntries(ctx context.Context, fonction string) ([]*model.GridEntry, error) {
	opts := options.Find().SetSort(bson.M{"ordre": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"fonction": fonction}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.GridEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
