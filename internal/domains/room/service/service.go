package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotie/config"
	"hotie/infras/otel"
	"hotie/internal/domains/room/model"
	"hotie/internal/domains/room/model/dto"
	"hotie/internal/domains/room/repository"
	"hotie/shared"
	"hotie/shared/cache"
	"hotie/shared/constant"
	gDto "hotie/shared/dto"
	"hotie/shared/failure"

	"github.com/rs/zerolog/log"
)

const notFoundMessage = "Room not found"

type Room interface {
	GetAll(ctx context.Context) ([]dto.RoomResponse, error)
	GetAvailable(ctx context.Context) ([]dto.RoomResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomResponse, error)
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo        repository.Room
	cfg         *config.Config
	cache       cache.Cache
	invalidator *cache.Invalidator
	otel        otel.Otel
}

func New(repo repository.Room, cfg *config.Config, c cache.Cache, invalidator *cache.Invalidator, otel otel.Otel) Room {
	return &serviceImpl{
		repo:        repo,
		cfg:         cfg,
		cache:       c,
		invalidator: invalidator,
		otel:        otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.ReadThrough(ctx, s.cache, cache.RoomsKey(), s.cfg.Cache.TTL, func(ctx context.Context) ([]dto.RoomResponse, error) {
		models, err := s.repo.GetAll(ctx, gDto.OrderBy(model.TableName+"."+model.FieldID, gDto.SortDirAsc), gDto.FilterGroup{})
		if err != nil {
			log.Error().Err(err).Msg("failed to get rooms")

			return nil, fmt.Errorf("failed to get rooms: %w", err)
		}

		return dto.FromModels(models), nil
	})
}

func (s *serviceImpl) GetAvailable(ctx context.Context) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusAvailable,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return cache.ReadThrough(ctx, s.cache, cache.AvailableRoomsKey(), s.cfg.Cache.TTL, func(ctx context.Context) ([]dto.RoomResponse, error) {
		models, err := s.repo.GetAll(ctx, gDto.OrderBy(model.TableName+"."+model.FieldID, gDto.SortDirAsc), filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get available rooms")

			return nil, fmt.Errorf("failed to get available rooms: %w", err)
		}

		return dto.FromModels(models), nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.ReadThrough(ctx, s.cache, cache.RoomKey(id), s.cfg.Cache.TTL, func(ctx context.Context) (dto.RoomResponse, error) {
		var res dto.RoomResponse

		room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Int64("id", id).Msg("failed to get room")

			return res, fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == 0 {
			return res, failure.NotFound(notFoundMessage) // nolint:wrapcheck
		}

		res.FromModel(room)

		return res, nil
	})
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidator.Invalidate(ctx, cache.WriteRoom, cache.Refs{cache.ResourceRoom: {room.ID}})

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	updatedFields := shared.TransformFields(req)

	var room model.Room

	if len(updatedFields) == 0 {
		room, err = s.repo.Get(ctx, filter)
	} else {
		room, err = s.repo.Update(ctx, updatedFields, filter)
	}

	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.NotFound(notFoundMessage) // nolint:wrapcheck
	}

	if len(updatedFields) > 0 {
		s.invalidator.Invalidate(ctx, cache.WriteRoom, cache.Refs{cache.ResourceRoom: {id}})
	}

	res.FromModel(room)

	return res, nil
}
