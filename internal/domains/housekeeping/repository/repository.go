package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotie/infras/otel"
	"hotie/infras/postgres"
	"hotie/internal/domains/housekeeping/model"
	gDto "hotie/shared/dto"
	gRepo "hotie/shared/repository"
)

type Housekeeping interface {
	Insert(ctx context.Context, model model.Task) (model.Task, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Task, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Task, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (model.Task, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (model.Task, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Task]
}

func New(db *postgres.Connection, otel otel.Otel) Housekeeping {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Task](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
