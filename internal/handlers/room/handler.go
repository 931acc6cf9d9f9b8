package room

import (
	"hotie/infras/otel"
	"hotie/internal/domains/room/model/dto"
	"hotie/internal/domains/room/service"
	"hotie/shared"
	"hotie/shared/constant"
	"hotie/shared/failure"
	"hotie/shared/logger"
	"hotie/shared/validator"
	"hotie/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const notFoundMessage = "Room not found"

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the room routes. guard wraps the routes that change room
// inventory.
func (handler *Handler) Router(router chi.Router, guard func(http.Handler) http.Handler) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/available", handler.GetAvailableRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)

		routerGroup.With(guard).Post("/", handler.CreateRoom)
		routerGroup.With(guard).Put("/{id}", handler.UpdateRoom)
	})
}

// GetRooms lists every room ordered by id.
// @Summary List rooms
// @Description List every room ordered by id.
// @Tags Room
// @Produce json
// @Success 200 {array} dto.RoomResponse
// @Failure 500 {object} response.Error
// @Router /rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err, "Failed to fetch rooms")

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetAvailableRooms lists the rooms that can be booked right now.
// @Summary List available rooms
// @Description List the rooms that can be booked right now.
// @Tags Room
// @Produce json
// @Success 200 {array} dto.RoomResponse
// @Failure 500 {object} response.Error
// @Router /rooms/available [get]
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	rooms, err := handler.service.GetAvailable(ctx)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get available rooms")

		response.WithError(w, err, "Failed to fetch available rooms")

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID returns one room.
// @Summary Get a room
// @Description Get a single room by id.
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.NotFound(notFoundMessage), constant.Empty)

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to get room")

		response.WithError(w, err, "Failed to fetch room")

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// CreateRoom adds a room to the inventory.
// @Summary Create a new room
// @Description Create a room. New rooms always start Available.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /rooms [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Warn().Err(err).Msg("invalid room request")

		response.WithError(w, err, "Failed to create room")

		return
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create room")

		response.WithError(w, err, "Failed to create room")

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithJSON(w, http.StatusCreated, room)
}

// UpdateRoom changes a room's number, type, or price.
// @Summary Update a room
// @Description Update the number, type, or price of a room. Status is driven by bookings.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /rooms/{id} [put]
// @Security ApiKeyAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.NotFound(notFoundMessage), constant.Empty)

		return
	}

	req := dto.UpdateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Warn().Err(err).Msg("invalid room request")

		response.WithError(w, err, "Failed to update room")

		return
	}

	room, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to update room")

		response.WithError(w, err, "Failed to update room")

		return
	}

	scope.AddEvent("Room updated successfully")

	response.WithJSON(w, http.StatusOK, room)
}
