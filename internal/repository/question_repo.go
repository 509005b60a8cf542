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

// QuestionRepo handles MongoDB operations for questions and
// questionnaires.
type QuestionRepo interface {
	CreateQuestionnaire(ctx context.Context, q *model.Questionnaire) (string, error)
	GetQuestionnaire(ctx context.Context, id string) (*model.Questionnaire, error)
	CreateQuestion(ctx context.Context, q *model.Question) (string, error)
	ListByQuestionnaire(ctx context.Context, questionnaireID string) ([]*model.Question, error)
}

type questionRepo struct {
	questionnaires *mongo.Collection
	questions      *mongo.Collection
}

// NewQuestionRepo creates a new question repository.
func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{
		questionnaires: db.Collection("questionnaires"),
		questions:      db.Collection("questions"),
	}
}

func (r *questionRepo) CreateQuestionnaire(ctx context.Context, q *model.Questionnaire) (string, error) {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	q.CreatedAt = time.Now()

	_, err := r.questionnaires.InsertOne(ctx, q)
	if err != nil {
		return "", err
	}
	return q.ID, nil
}

func (r *questionRepo) GetQuestionnaire(ctx context.Context, id string) (*model.Questionnaire, error) {
	var q model.Questionnaire
	err := r.questionnaires.FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionRepo) CreateQuestion(ctx context.Context, q *model.Question) (string, error) {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	q.CreatedAt = time.Now()

	_, err := r.questions.InsertOne(ctx, q)
	if err != nil {
		return "", err
	}
	return q.ID, nil
}

func (r *questionRepo) ListByQuestionnaire(ctx context.Context, questionnaireID string) ([]*model.Question, error) {
	opts := options.Find().SetSort(bson.M{"ordre": 1})
	cursor, err := r.questions.Find(ctx, bson.M{"questionnaireId": questionnaireID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}
