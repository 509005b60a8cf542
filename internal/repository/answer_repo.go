package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/e-dsin/maturity-sub005/internal/model"
)

// AnswerRepo handles MongoDB operations for answers.
type AnswerRepo interface {
	Save(ctx context.Context, answer *model.Answer) error
	ListByForm(ctx context.Context, formID string) ([]*model.Answer, error)
}

type answerRepo struct {
	collection *mongo.Collection
}

// NewAnswerRepo creates a new answer repository.
func NewAnswerRepo(db *mongo.Database) AnswerRepo {
	return &answerRepo{
		collection: db.Collection("reponses"),
	}
}

// Save upserts the answer for its (form, question) pair. A form
// normally has at most one answer per question; re-answering replaces.
func (r *answerRepo) Save(ctx context.Context, answer *model.Answer) error {
	if answer.ID == "" {
		answer.ID = uuid.New().String()
	}
	if answer.AnsweredAt.IsZero() {
		answer.AnsweredAt = time.Now()
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{
		"formId":     answer.FormID,
		"questionId": answer.QuestionID,
	}, answer, opts)
	return err
}

func (r *answerRepo) ListByForm(ctx context.Context, formID string) ([]*model.Answer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"formId": formID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var answers []*model.Answer
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
