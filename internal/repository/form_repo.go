package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/e-dsin/maturity-sub005/internal/model"
)

// FormRepo handles MongoDB operations for forms.
type FormRepo interface {
	Create(ctx context.Context, form *model.Form) (string, error)
	GetByID(ctx context.Context, id string) (*model.Form, error)
	List(ctx context.Context, filter bson.M) ([]*model.Form, error)
	UpdateStatus(ctx context.Context, id string, status model.FormStatus, at time.Time) error
}

type formRepo struct {
	collection *mongo.Collection
}

// NewFormRepo creates a new form repository.
func NewFormRepo(db *mongo.Database) FormRepo {
	return &formRepo{
		collection: db.Collection("formulaires"),
	}
}

func (r *formRepo) Create(ctx context.Context, form *model.Form) (string, error) {
	if form.ID == "" {
		form.ID = uuid.New().String()
	}
	if form.CreatedAt.IsZero() {
		form.CreatedAt = time.Now()
	}
	if form.Status == "" {
		form.Status = model.FormDraft
	}

	_, err := r.collection.InsertOne(ctx, form)
	if err != nil {
		return "", err
	}
	return form.ID, nil
}

func (r *formRepo) GetByID(ctx context.Context, id string) (*model.Form, error) {
	var form model.Form
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepo) List(ctx context.Context, filter bson.M) ([]*model.Form, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var forms []*model.Form
	if err := cursor.All(ctx, &forms); err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *formRepo) UpdateStatus(ctx context.Context, id string, status model.FormStatus, at time.Time) error {
	set := bson.M{"status": status}
	switch status {
	case model.FormSubmitted:
		set["submittedAt"] = at
	case model.FormValidated:
		set["validatedAt"] = at
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}
