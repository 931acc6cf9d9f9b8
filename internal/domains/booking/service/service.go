package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotie/config"
	"hotie/infras/otel"
	"hotie/infras/postgres"
	"hotie/internal/domains/booking/model"
	"hotie/internal/domains/booking/model/dto"
	"hotie/internal/domains/booking/repository"
	"hotie/internal/domains/room/lifecycle"
	"hotie/shared"
	"hotie/shared/cache"
	"hotie/shared/constant"
	gDto "hotie/shared/dto"
	"hotie/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const notFoundMessage = "Booking not found"

type Booking interface {
	GetAll(ctx context.Context) ([]dto.BookingResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (dto.BookingResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo        repository.Booking
	lifecycle   lifecycle.Manager
	transactor  postgres.Transactor
	cfg         *config.Config
	cache       cache.Cache
	invalidator *cache.Invalidator
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	lifecycleManager lifecycle.Manager,
	transactor postgres.Transactor,
	cfg *config.Config,
	c cache.Cache,
	invalidator *cache.Invalidator,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		lifecycle:   lifecycleManager,
		transactor:  transactor,
		cfg:         cfg,
		cache:       c,
		invalidator: invalidator,
		otel:        otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.ReadThrough(ctx, s.cache, cache.BookingsKey(), s.cfg.Cache.TTL, func(ctx context.Context) ([]dto.BookingResponse, error) {
		models, err := s.repo.GetAll(ctx, gDto.OrderBy(model.TableName+"."+model.FieldCheckIn, gDto.SortDirDesc), gDto.FilterGroup{})
		if err != nil {
			log.Error().Err(err).Msg("failed to get bookings")

			return nil, fmt.Errorf("failed to get bookings: %w", err)
		}

		return dto.FromModels(models), nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.ReadThrough(ctx, s.cache, cache.BookingKey(id), s.cfg.Cache.TTL, func(ctx context.Context) (dto.BookingResponse, error) {
		var res dto.BookingResponse

		booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Int64("id", id).Msg("failed to get booking")

			return res, fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == 0 {
			return res, failure.NotFound(notFoundMessage) // nolint:wrapcheck
		}

		res.FromModel(booking)

		return res, nil
	})
}

// Create books an Available room. The room moves to Booked in the same
// transaction as the insert, so of two concurrent bookings for one room
// exactly one succeeds.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	data, err := req.ToModel()
	if err != nil {
		return res, err
	}

	var (
		booking     model.Booking
		transitions []lifecycle.Transition
	)

	err = s.transactor.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		transition, err := s.lifecycle.Apply(ctx, sqltx, data.RoomID, lifecycle.EventBookingCreated)
		if err != nil {
			return err
		}

		transitions = append(transitions, transition)

		booking, err = s.repo.InsertTx(ctx, sqltx, data)
		if err != nil {
			log.Error().Err(err).Msg("failed to create booking")

			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	s.afterWrite(ctx, cache.Refs{
		cache.ResourceBooking: {booking.ID},
		cache.ResourceRoom:    {booking.RoomID},
	}, transitions)

	res.FromModel(booking)

	return res, nil
}

// Update applies a partial update. Moving the booking to another room books
// the new room and frees the old one; a Checked-In or Checked-Out status
// moves the booked room along.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		booking     model.Booking
		transitions []lifecycle.Transition
		rooms       []int64
	)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.transactor.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		current, err := s.repo.GetForUpdateTx(ctx, sqltx, filter)
		if err != nil {
			log.Error().Err(err).Int64("id", id).Msg("failed to get booking")

			return fmt.Errorf("failed to update booking: %w", err)
		}

		if current.ID == 0 {
			return failure.NotFound(notFoundMessage) // nolint:wrapcheck
		}

		fields, err := req.ToFields(current)
		if err != nil {
			return err
		}

		if len(fields) == 0 {
			booking = current

			return nil
		}

		if req.RoomID != nil && *req.RoomID != current.RoomID {
			moved, err := s.moveRoom(ctx, sqltx, current.RoomID, *req.RoomID)
			if err != nil {
				return err
			}

			transitions = append(transitions, moved...)
			rooms = append(rooms, current.RoomID)
		}

		booking, err = s.repo.UpdateTx(ctx, sqltx, fields, filter)
		if err != nil {
			log.Error().Err(err).Int64("id", id).Msg("failed to update booking")

			return fmt.Errorf("failed to update booking: %w", err)
		}

		rooms = append(rooms, booking.RoomID)

		if req.Status == nil {
			return nil
		}

		event, ok := lifecycle.EventForBookingStatus(*req.Status)
		if !ok {
			return nil
		}

		transition, err := s.lifecycle.Apply(ctx, sqltx, booking.RoomID, event)
		if err != nil {
			return err
		}

		transitions = append(transitions, transition)

		return nil
	})
	if err != nil {
		return res, err
	}

	if len(rooms) > 0 {
		s.afterWrite(ctx, cache.Refs{
			cache.ResourceBooking: {id},
			cache.ResourceRoom:    rooms,
		}, transitions)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		booking     model.Booking
		payments    []int64
		transitions []lifecycle.Transition
	)

	err = s.transactor.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		var err error

		payments, err = s.repo.DeletePaymentsTx(ctx, sqltx, id)
		if err != nil {
			log.Error().Err(err).Int64("id", id).Msg("failed to delete booking payments")

			return fmt.Errorf("failed to delete booking: %w", err)
		}

		deleted, err := s.repo.DeleteTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Int64("id", id).Msg("failed to delete booking")

			return fmt.Errorf("failed to delete booking: %w", err)
		}

		if deleted.ID == 0 {
			return failure.NotFound(notFoundMessage) // nolint:wrapcheck
		}

		booking = deleted

		transition, err := s.lifecycle.Apply(ctx, sqltx, booking.RoomID, lifecycle.EventBookingDeleted)
		if err != nil {
			return err
		}

		transitions = append(transitions, transition)

		return nil
	})
	if err != nil {
		return err
	}

	s.afterWrite(ctx, cache.Refs{
		cache.ResourceBooking: {id},
		cache.ResourceRoom:    {booking.RoomID},
		cache.ResourcePayment: payments,
	}, transitions)

	return nil
}

// moveRoom books the target room before freeing the source, so a move onto
// an unavailable room leaves the booking where it was.
func (s *serviceImpl) moveRoom(ctx context.Context, sqltx *sqlx.Tx, from, to int64) ([]lifecycle.Transition, error) {
	booked, err := s.lifecycle.Apply(ctx, sqltx, to, lifecycle.EventBookingCreated)
	if err != nil {
		return nil, err
	}

	freed, err := s.lifecycle.Apply(ctx, sqltx, from, lifecycle.EventBookingDeleted)
	if err != nil {
		return nil, err
	}

	return []lifecycle.Transition{booked, freed}, nil
}

// afterWrite runs once the transaction committed.
func (s *serviceImpl) afterWrite(ctx context.Context, refs cache.Refs, transitions []lifecycle.Transition) {
	s.invalidator.Invalidate(ctx, cache.WriteBooking, refs)

	s.lifecycle.Publish(ctx, transitions...)
}
