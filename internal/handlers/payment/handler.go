package payment

import (
	"hotie/infras/otel"
	"hotie/internal/domains/payment/model/dto"
	"hotie/internal/domains/payment/service"
	"hotie/shared"
	"hotie/shared/constant"
	"hotie/shared/failure"
	"hotie/shared/logger"
	"hotie/shared/validator"
	"hotie/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const notFoundMessage = "Payment not found"

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPayments)
		routerGroup.Get("/{id}", handler.GetPaymentByID)
		routerGroup.Post("/", handler.CreatePayment)
		routerGroup.Put("/{id}", handler.UpdatePayment)
		routerGroup.Delete("/{id}", handler.DeletePayment)
	})
}

// GetPayments lists payments, newest first, with the guest and room they were taken for.
// @Summary List payments
// @Description List payments, newest first, with the guest and room they were taken for.
// @Tags Payment
// @Produce json
// @Success 200 {array} dto.PaymentResponse
// @Failure 500 {object} response.Error
// @Router /payments [get]
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	payments, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err, "Failed to fetch payments")

		return
	}

	response.WithJSON(w, http.StatusOK, payments)
}

// GetPaymentByID returns one payment.
// @Summary Get a payment
// @Description Get a single payment by id.
// @Tags Payment
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payments/{id} [get]
func (handler *Handler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentByID")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.NotFound(notFoundMessage), constant.Empty)

		return
	}

	payment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to get payment")

		response.WithError(w, err, "Failed to fetch payment")

		return
	}

	response.WithJSON(w, http.StatusOK, payment)
}

// CreatePayment records a payment. paid_at is assigned by the store.
// @Summary Record a payment
// @Description Record a payment against a booking. paid_at is assigned by the store.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payments [post]
func (handler *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePayment")
	defer scope.End()

	req := dto.CreatePaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Warn().Err(err).Msg("invalid payment request")

		response.WithError(w, err, "Failed to create payment")

		return
	}

	payment, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create payment")

		response.WithError(w, err, "Failed to create payment")

		return
	}

	scope.AddEvent("Payment created successfully")

	response.WithJSON(w, http.StatusCreated, payment)
}

// UpdatePayment corrects a payment's amount or method.
// @Summary Update a payment
// @Description Correct the amount or method of a payment.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param request body dto.UpdatePaymentRequest true "Fields to change"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payments/{id} [put]
func (handler *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePayment")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.NotFound(notFoundMessage), constant.Empty)

		return
	}

	req := dto.UpdatePaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Warn().Err(err).Msg("invalid payment request")

		response.WithError(w, err, "Failed to update payment")

		return
	}

	payment, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to update payment")

		response.WithError(w, err, "Failed to update payment")

		return
	}

	scope.AddEvent("Payment updated successfully")

	response.WithJSON(w, http.StatusOK, payment)
}

// DeletePayment removes a payment.
// @Summary Delete a payment
// @Description Delete a payment.
// @Tags Payment
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} response.Message "Payment deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payments/{id} [delete]
func (handler *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePayment")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.NotFound(notFoundMessage), constant.Empty)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to delete payment")

		response.WithError(w, err, "Failed to delete payment")

		return
	}

	scope.AddEvent("Payment deleted successfully")

	response.WithMessage(w, http.StatusOK, "Payment deleted successfully")
}
