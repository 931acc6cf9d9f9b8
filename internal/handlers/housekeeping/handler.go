package housekeeping

import (
	"hotie/infras/otel"
	"hotie/internal/domains/housekeeping/model/dto"
	"hotie/internal/domains/housekeeping/service"
	"hotie/shared"
	"hotie/shared/constant"
	"hotie/shared/failure"
	"hotie/shared/logger"
	"hotie/shared/validator"
	"hotie/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const notFoundMessage = "Housekeeping record not found"

type Handler struct {
	service service.Housekeeping
	otel    otel.Otel
}

func New(service service.Housekeeping, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/housekeeping", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTasks)
		routerGroup.Get("/{id}", handler.GetTaskByID)
		routerGroup.Post("/", handler.CreateTask)
		routerGroup.Put("/{id}", handler.UpdateTask)
		routerGroup.Delete("/{id}", handler.DeleteTask)
	})
}

// GetTasks lists housekeeping records, latest first.
// @Summary List housekeeping records
// @Description List housekeeping records, latest first.
// @Tags Housekeeping
// @Produce json
// @Success 200 {array} dto.TaskResponse
// @Failure 500 {object} response.Error
// @Router /housekeeping [get]
func (handler *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTasks")
	defer scope.End()

	tasks, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get housekeeping records")

		response.WithError(w, err, "Failed to fetch housekeeping records")

		return
	}

	response.WithJSON(w, http.StatusOK, tasks)
}

// GetTaskByID returns one housekeeping record.
// @Summary Get a housekeeping record
// @Description Get a single housekeeping record by id.
// @Tags Housekeeping
// @Produce json
// @Param id path int true "Housekeeping ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /housekeeping/{id} [get]
func (handler *Handler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaskByID")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.NotFound(notFoundMessage), constant.Empty)

		return
	}

	task, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to get housekeeping record")

		response.WithError(w, err, "Failed to fetch housekeeping record")

		return
	}

	response.WithJSON(w, http.StatusOK, task)
}

// CreateTask assigns a room to a staff member.
// @Summary Create a housekeeping record
// @Description Assign a room to a staff member.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Housekeeping details"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /housekeeping [post]
func (handler *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	req := dto.CreateTaskRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Warn().Err(err).Msg("invalid housekeeping record request")

		response.WithError(w, err, "Failed to create housekeeping record")

		return
	}

	task, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create housekeeping record")

		response.WithError(w, err, "Failed to create housekeeping record")

		return
	}

	scope.AddEvent("Housekeeping record created successfully")

	response.WithJSON(w, http.StatusCreated, task)
}

// UpdateTask changes a housekeeping record.
// @Summary Update a housekeeping record
// @Description Update the status or assignment of a housekeeping record.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path int true "Housekeeping ID"
// @Param request body dto.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /housekeeping/{id} [put]
func (handler *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTask")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.NotFound(notFoundMessage), constant.Empty)

		return
	}

	req := dto.UpdateTaskRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Warn().Err(err).Msg("invalid housekeeping record request")

		response.WithError(w, err, "Failed to update housekeeping record")

		return
	}

	task, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to update housekeeping record")

		response.WithError(w, err, "Failed to update housekeeping record")

		return
	}

	scope.AddEvent("Housekeeping record updated successfully")

	response.WithJSON(w, http.StatusOK, task)
}

// DeleteTask removes a housekeeping record.
// @Summary Delete a housekeeping record
// @Description Delete a housekeeping record.
// @Tags Housekeeping
// @Produce json
// @Param id path int true "Housekeeping ID"
// @Success 200 {object} response.Message "Housekeeping record deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /housekeeping/{id} [delete]
func (handler *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTask")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.NotFound(notFoundMessage), constant.Empty)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to delete housekeeping record")

		response.WithError(w, err, "Failed to delete housekeeping record")

		return
	}

	scope.AddEvent("Housekeeping record deleted successfully")

	response.WithMessage(w, http.StatusOK, "Housekeeping record deleted successfully")
}
