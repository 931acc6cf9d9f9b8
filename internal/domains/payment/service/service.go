package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotie/config"
	"hotie/infras/otel"
	"hotie/internal/domains/payment/model"
	"hotie/internal/domains/payment/model/dto"
	"hotie/internal/domains/payment/repository"
	"hotie/shared"
	"hotie/shared/cache"
	"hotie/shared/constant"
	gDto "hotie/shared/dto"
	"hotie/shared/failure"

	"github.com/rs/zerolog/log"
)

const notFoundMessage = "Payment not found"

type Payment interface {
	GetAll(ctx context.Context) ([]dto.PaymentResponse, error)
	Get(ctx context.Context, id int64) (dto.PaymentResponse, error)
	Create(ctx context.Context, req dto.CreatePaymentRequest) (dto.PaymentResponse, error)
	Update(ctx context.Context, req dto.UpdatePaymentRequest, id int64) (dto.PaymentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo        repository.Payment
	cfg         *config.Config
	cache       cache.Cache
	invalidator *cache.Invalidator
	otel        otel.Otel
}

func New(repo repository.Payment, cfg *config.Config, c cache.Cache, invalidator *cache.Invalidator, otel otel.Otel) Payment {
	return &serviceImpl{
		repo:        repo,
		cfg:         cfg,
		cache:       c,
		invalidator: invalidator,
		otel:        otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.ReadThrough(ctx, s.cache, cache.PaymentsKey(), s.cfg.Cache.TTL, func(ctx context.Context) ([]dto.PaymentResponse, error) {
		models, err := s.repo.GetAll(ctx, gDto.OrderBy(model.TableName+"."+model.FieldPaidAt, gDto.SortDirDesc), gDto.FilterGroup{})
		if err != nil {
			log.Error().Err(err).Msg("failed to get payments")

			return nil, fmt.Errorf("failed to get payments: %w", err)
		}

		return dto.FromModels(models), nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.ReadThrough(ctx, s.cache, cache.PaymentKey(id), s.cfg.Cache.TTL, func(ctx context.Context) (dto.PaymentResponse, error) {
		var res dto.PaymentResponse

		payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Int64("id", id).Msg("failed to get payment")

			return res, fmt.Errorf("failed to get payment: %w", err)
		}

		if payment.ID == 0 {
			return res, failure.NotFound(notFoundMessage) // nolint:wrapcheck
		}

		res.FromModel(payment)

		return res, nil
	})
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payment, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create payment")

		return res, fmt.Errorf("failed to create payment: %w", err)
	}

	s.invalidator.Invalidate(ctx, cache.WritePayment, cache.Refs{cache.ResourcePayment: {payment.ID}})

	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePaymentRequest, id int64) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	updatedFields := shared.TransformFields(req)

	var payment model.Payment

	if len(updatedFields) == 0 {
		payment, err = s.repo.Get(ctx, filter)
	} else {
		payment, err = s.repo.Update(ctx, updatedFields, filter)
	}

	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update payment")

		return res, fmt.Errorf("failed to update payment: %w", err)
	}

	if payment.ID == 0 {
		return res, failure.NotFound(notFoundMessage) // nolint:wrapcheck
	}

	if len(updatedFields) > 0 {
		s.invalidator.Invalidate(ctx, cache.WritePayment, cache.Refs{cache.ResourcePayment: {id}})
	}

	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payment, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete payment")

		return fmt.Errorf("failed to delete payment: %w", err)
	}

	if payment.ID == 0 {
		return failure.NotFound(notFoundMessage) // nolint:wrapcheck
	}

	s.invalidator.Invalidate(ctx, cache.WritePayment, cache.Refs{cache.ResourcePayment: {id}})

	return nil
}
