package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotie/config"
	"hotie/infras/otel"
	"hotie/internal/domains/housekeeping/model"
	"hotie/internal/domains/housekeeping/model/dto"
	"hotie/internal/domains/housekeeping/repository"
	"hotie/shared"
	"hotie/shared/cache"
	"hotie/shared/constant"
	gDto "hotie/shared/dto"
	"hotie/shared/failure"
	"hotie/shared/timezone"

	"github.com/rs/zerolog/log"
)

const notFoundMessage = "Housekeeping record not found"

type Housekeeping interface {
	GetAll(ctx context.Context) ([]dto.TaskResponse, error)
	Get(ctx context.Context, id int64) (dto.TaskResponse, error)
	Create(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskResponse, error)
	Update(ctx context.Context, req dto.UpdateTaskRequest, id int64) (dto.TaskResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo        repository.Housekeeping
	cfg         *config.Config
	cache       cache.Cache
	invalidator *cache.Invalidator
	otel        otel.Otel
}

func New(repo repository.Housekeeping, cfg *config.Config, c cache.Cache, invalidator *cache.Invalidator, otel otel.Otel) Housekeeping {
	return &serviceImpl{
		repo:        repo,
		cfg:         cfg,
		cache:       c,
		invalidator: invalidator,
		otel:        otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.ReadThrough(ctx, s.cache, cache.HousekeepingTasksKey(), s.cfg.Cache.TTL, func(ctx context.Context) ([]dto.TaskResponse, error) {
		tasks, err := s.repo.GetAll(ctx, gDto.OrderBy(model.TableName+"."+model.FieldDate, gDto.SortDirDesc), gDto.FilterGroup{})
		if err != nil {
			log.Error().Err(err).Msg("failed to get housekeeping records")

			return nil, fmt.Errorf("failed to get housekeeping records: %w", err)
		}

		return dto.FromModels(tasks), nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.ReadThrough(ctx, s.cache, cache.HousekeepingTaskKey(id), s.cfg.Cache.TTL, func(ctx context.Context) (dto.TaskResponse, error) {
		var res dto.TaskResponse

		task, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Int64("id", id).Msg("failed to get housekeeping record")

			return res, fmt.Errorf("failed to get housekeeping record: %w", err)
		}

		if task.ID == 0 {
			return res, failure.NotFound(notFoundMessage) // nolint:wrapcheck
		}

		res.FromModel(task)

		return res, nil
	})
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	task, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create housekeeping record")

		return res, fmt.Errorf("failed to create housekeeping record: %w", err)
	}

	s.invalidator.Invalidate(ctx, cache.WriteHousekeeping, cache.Refs{cache.ResourceHousekeeping: {task.ID}})

	res.FromModel(task)

	return res, nil
}

// Update always restamps the record date, so it is never a no-op.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTaskRequest, id int64) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	updatedFields := shared.TransformFields(req)
	updatedFields[model.FieldDate] = timezone.Now()

	task, err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update housekeeping record")

		return res, fmt.Errorf("failed to update housekeeping record: %w", err)
	}

	if task.ID == 0 {
		return res, failure.NotFound(notFoundMessage) // nolint:wrapcheck
	}

	s.invalidator.Invalidate(ctx, cache.WriteHousekeeping, cache.Refs{cache.ResourceHousekeeping: {id}})

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	task, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete housekeeping record")

		return fmt.Errorf("failed to delete housekeeping record: %w", err)
	}

	if task.ID == 0 {
		return failure.NotFound(notFoundMessage) // nolint:wrapcheck
	}

	s.invalidator.Invalidate(ctx, cache.WriteHousekeeping, cache.Refs{cache.ResourceHousekeeping: {id}})

	return nil
}
