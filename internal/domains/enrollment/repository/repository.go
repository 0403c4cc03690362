package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/antoniomp17/WebPsicolog-a/infras/otel"
	"github.com/antoniomp17/WebPsicolog-a/infras/postgres"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/enrollment/model"
	gDto "github.com/antoniomp17/WebPsicolog-a/shared/dto"
	gRepo "github.com/antoniomp17/WebPsicolog-a/shared/repository"
)

type Enrollment interface {
	Insert(ctx context.Context, model model.Enrollment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Enrollment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Enrollment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Enrollment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Enrollment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Enrollment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
