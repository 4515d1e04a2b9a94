package garden

import (
	"net/http"
	"strconv"

	"atithi/infras/otel"
	"atithi/internal/domains/garden/model"
	"atithi/internal/domains/garden/model/dto"
	"atithi/internal/domains/garden/service"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/validator"
	"atithi/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Garden
	otel    otel.Otel
}

func New(service service.Garden, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/gardens", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGardens)
		routerGroup.Get("/{id}", handler.GetGardenByID)
		routerGroup.Patch("/{id}/status", handler.SetGardenStatus)
	})
}

// GetGardens retrieves all marriage gardens based on query parameters.
// @Summary Get all gardens
// @Description Retrieve all marriage gardens with optional filtering and pagination.
// @Tags Garden
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (available, booked, maintenance)"
// @Param min_capacity query int false "Filter by minimum guest capacity"
// @Success 200 {object} response.Data[dto.GetGardensResponse] "List of gardens"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gardens [get]
func (handler *Handler) GetGardens(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGardens")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)
	minCapacity := r.URL.Query().Get(constant.RequestParamMinCapacity)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if minCapacity != "" {
		capacity, err := strconv.Atoi(minCapacity)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("invalid min_capacity parameter")

			response.WithMessage(w, http.StatusBadRequest, "min_capacity must be an integer")

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  constant.RequestParamMinCapacity,
			Field:    model.FieldCapacity,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    capacity,
			Table:    model.TableName,
		})
	}

	gardens, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gardens")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gardens retrieved successfully")

	response.WithJSON(w, http.StatusOK, gardens)
}

// GetGardenByID retrieves a garden by its ID.
// @Summary Get a garden by ID
// @Description Retrieve a marriage garden by its unique identifier.
// @Tags Garden
// @Accept json
// @Produce json
// @Param id path string true "Garden ID"
// @Success 200 {object} response.Data[dto.GardenResponse] "Garden details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gardens/{id} [get]
func (handler *Handler) GetGardenByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGardenByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	garden, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get garden by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Garden retrieved successfully")

	response.WithJSON(w, http.StatusOK, garden)
}

// SetGardenStatus updates the operational status of a garden.
// @Summary Set garden status
// @Description Update the operational status of a garden (available, booked, maintenance).
// @Tags Garden
// @Accept json
// @Produce json
// @Param id path string true "Garden ID"
// @Param request body dto.SetGardenStatusRequest true "Set Garden Status Request"
// @Success 200 {object} response.Message "Garden status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gardens/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) SetGardenStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetGardenStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SetGardenStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update garden status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Garden status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Garden status updated successfully")
}
