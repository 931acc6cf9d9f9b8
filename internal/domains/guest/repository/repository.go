package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotie/infras/otel"
	"hotie/infras/postgres"
	"hotie/internal/domains/guest/model"
	gDto "hotie/shared/dto"
	gRepo "hotie/shared/repository"
)

type Guest interface {
	Insert(ctx context.Context, model model.Guest) (model.Guest, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (model.Guest, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (model.Guest, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
