package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotie/config"
	"hotie/infras/otel"
	"hotie/internal/domains/guest/model"
	"hotie/internal/domains/guest/model/dto"
	"hotie/internal/domains/guest/repository"
	"hotie/shared"
	"hotie/shared/cache"
	"hotie/shared/constant"
	gDto "hotie/shared/dto"
	"hotie/shared/failure"

	"github.com/rs/zerolog/log"
)

const notFoundMessage = "Guest not found"

type Guest interface {
	GetAll(ctx context.Context) ([]dto.GuestResponse, error)
	Get(ctx context.Context, id int64) (dto.GuestResponse, error)
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id int64) (dto.GuestResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo        repository.Guest
	cfg         *config.Config
	cache       cache.Cache
	invalidator *cache.Invalidator
	otel        otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, c cache.Cache, invalidator *cache.Invalidator, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:        repo,
		cfg:         cfg,
		cache:       c,
		invalidator: invalidator,
		otel:        otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.ReadThrough(ctx, s.cache, cache.GuestsKey(), s.cfg.Cache.TTL, func(ctx context.Context) ([]dto.GuestResponse, error) {
		models, err := s.repo.GetAll(ctx, gDto.OrderBy(model.TableName+"."+model.FieldName, gDto.SortDirAsc), gDto.FilterGroup{})
		if err != nil {
			log.Error().Err(err).Msg("failed to get guests")

			return nil, fmt.Errorf("failed to get guests: %w", err)
		}

		return dto.FromModels(models), nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.ReadThrough(ctx, s.cache, cache.GuestKey(id), s.cfg.Cache.TTL, func(ctx context.Context) (dto.GuestResponse, error) {
		var res dto.GuestResponse

		guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Int64("id", id).Msg("failed to get guest")

			return res, fmt.Errorf("failed to get guest: %w", err)
		}

		if guest.ID == 0 {
			return res, failure.NotFound(notFoundMessage) // nolint:wrapcheck
		}

		res.FromModel(guest)

		return res, nil
	})
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return res, fmt.Errorf("failed to create guest: %w", err)
	}

	s.invalidator.Invalidate(ctx, cache.WriteGuest, cache.Refs{cache.ResourceGuest: {guest.ID}})

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id int64) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	updatedFields := shared.TransformFields(req)

	var guest model.Guest

	if len(updatedFields) == 0 {
		guest, err = s.repo.Get(ctx, filter)
	} else {
		guest, err = s.repo.Update(ctx, updatedFields, filter)
	}

	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update guest")

		return res, fmt.Errorf("failed to update guest: %w", err)
	}

	if guest.ID == 0 {
		return res, failure.NotFound(notFoundMessage) // nolint:wrapcheck
	}

	if len(updatedFields) > 0 {
		s.invalidator.Invalidate(ctx, cache.WriteGuest, cache.Refs{cache.ResourceGuest: {id}})
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	if guest.ID == 0 {
		return failure.NotFound(notFoundMessage) // nolint:wrapcheck
	}

	s.invalidator.Invalidate(ctx, cache.WriteGuest, cache.Refs{cache.ResourceGuest: {id}})

	return nil
}
