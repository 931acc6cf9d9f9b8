package guest

import (
	"hotie/infras/otel"
	"hotie/internal/domains/guest/model/dto"
	"hotie/internal/domains/guest/service"
	"hotie/shared"
	"hotie/shared/constant"
	"hotie/shared/failure"
	"hotie/shared/logger"
	"hotie/shared/validator"
	"hotie/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const notFoundMessage = "Guest not found"

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/{id}", handler.GetGuestByID)
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Put("/{id}", handler.UpdateGuest)
		routerGroup.Delete("/{id}", handler.DeleteGuest)
	})
}

// GetGuests lists guests ordered by name.
// @Summary List guests
// @Description List guests ordered by name.
// @Tags Guest
// @Produce json
// @Success 200 {array} dto.GuestResponse
// @Failure 500 {object} response.Error
// @Router /guests [get]
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	guests, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err, "Failed to fetch guests")

		return
	}

	response.WithJSON(w, http.StatusOK, guests)
}

// GetGuestByID returns one guest.
// @Summary Get a guest
// @Description Get a single guest by id.
// @Tags Guest
// @Produce json
// @Param id path int true "Guest ID"
// @Success 200 {object} dto.GuestResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /guests/{id} [get]
func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.NotFound(notFoundMessage), constant.Empty)

		return
	}

	guest, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to get guest")

		response.WithError(w, err, "Failed to fetch guest")

		return
	}

	response.WithJSON(w, http.StatusOK, guest)
}

// CreateGuest registers a guest.
// @Summary Create a new guest
// @Description Register a guest.
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Guest details"
// @Success 201 {object} dto.GuestResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /guests [post]
func (handler *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.CreateGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Warn().Err(err).Msg("invalid guest request")

		response.WithError(w, err, "Failed to create guest")

		return
	}

	guest, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create guest")

		response.WithError(w, err, "Failed to create guest")

		return
	}

	scope.AddEvent("Guest created successfully")

	response.WithJSON(w, http.StatusCreated, guest)
}

// UpdateGuest changes a guest's details.
// @Summary Update a guest
// @Description Update the contact details of a guest.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path int true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Fields to change"
// @Success 200 {object} dto.GuestResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /guests/{id} [put]
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.NotFound(notFoundMessage), constant.Empty)

		return
	}

	req := dto.UpdateGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Warn().Err(err).Msg("invalid guest request")

		response.WithError(w, err, "Failed to update guest")

		return
	}

	guest, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to update guest")

		response.WithError(w, err, "Failed to update guest")

		return
	}

	scope.AddEvent("Guest updated successfully")

	response.WithJSON(w, http.StatusOK, guest)
}

// DeleteGuest removes a guest.
// @Summary Delete a guest
// @Description Delete a guest.
// @Tags Guest
// @Produce json
// @Param id path int true "Guest ID"
// @Success 200 {object} response.Message "Guest deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /guests/{id} [delete]
func (handler *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.NotFound(notFoundMessage), constant.Empty)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to delete guest")

		response.WithError(w, err, "Failed to delete guest")

		return
	}

	scope.AddEvent("Guest deleted successfully")

	response.WithMessage(w, http.StatusOK, "Guest deleted successfully")
}
