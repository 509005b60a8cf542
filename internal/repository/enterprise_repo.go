package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/e-dsin/maturity-sub005/internal/model"
)

// EnterpriseRepo handles MongoDB operations for enterprises and their
// applications.
type EnterpriseRepo interface {
	Create(ctx context.Context, e *model.Enterprise) (string, error)
	GetByID(ctx context.Context, id string) (*model.Enterprise, error)
	List(ctx context.Context) ([]*model.Enterprise, error)
	CreateApplication(ctx context.Context, a *model.Application) (string, error)
	ListApplications(ctx context.Context, enterpriseID string) ([]*model.Application, error)
}

type enterpriseRepo struct {
	enterprises  *mongo.Collection
	applications *mongo.Collection
}

// NewEnterpriseRepo creates a new enterprise repository.
func NewEnterpriseRepo(db *mongo.Database) EnterpriseRepo {
	return &enterpriseRepo{
		enterprises:  db.Collection("entreprises"),
		applications: db.Collection("applications"),
	}
}

func (r *enterpriseRepo) Create(ctx context.Context, e *model.Enterprise) (string, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = time.Now()

	_, err := r.enterprises.InsertOne(ctx, e)
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

func (r *enterpriseRepo) GetByID(ctx context.Context, id string) (*model.Enterprise, error) {
	var e model.Enterprise
	err := r.enterprises.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enterpriseRepo) List(ctx context.Context) ([]*model.Enterprise, error) {
	cursor, err := r.enterprises.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var enterprises []*model.Enterprise
	if err := cursor.All(ctx, &enterprises); err != nil {
		return nil, err
	}
	return enterprises, nil
}

func (r *enterpriseRepo) CreateApplication(ctx context.Context, a *model.Application) (string, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	a.CreatedAt = time.Now()

	_, err := r.applications.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}
	return a.ID, nil
}

func (r *enterpriseRepo) ListApplications(ctx context.Context, enterpriseID string) ([]*model.Application, error) {
	cursor, err := r.applications.Find(ctx, bson.M{"enterpriseId": enterpriseID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []*model.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
