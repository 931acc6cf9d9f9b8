package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotie/infras/otel"
	"hotie/infras/postgres"
	"hotie/internal/domains/payment/model"
	gDto "hotie/shared/dto"
	gRepo "hotie/shared/repository"
)

type Payment interface {
	Insert(ctx context.Context, model model.Payment) (model.Payment, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (model.Payment, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (model.Payment, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
