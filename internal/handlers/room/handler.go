package room

import (
	"net/http"
	"strconv"

	"atithi/infras/otel"
	"atithi/internal/domains/room/model"
	"atithi/internal/domains/room/model/dto"
	"atithi/internal/domains/room/service"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/validator"
	"atithi/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

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

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}/status", handler.SetRoomStatus)
	})
}

// GetRooms retrieves all rooms based on query parameters.
// @Summary Get all rooms
// @Description Retrieve all rooms with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by room type (single, double, suite, deluxe, presidential)"
// @Param category query string false "Filter by category (standard, premium, luxury)"
// @Param status query string false "Filter by status (available, occupied, maintenance, reserved)"
// @Param min_capacity query int false "Filter by minimum guest capacity"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	roomType := r.URL.Query().Get(model.FieldType)
	category := r.URL.Query().Get(model.FieldCategory)
	status := r.URL.Query().Get(model.FieldStatus)
	minCapacity := r.URL.Query().Get(constant.RequestParamMinCapacity)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	if category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
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

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room by its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// SetRoomStatus updates the operational status of a room.
// @Summary Set room status
// @Description Update the operational status of a room (available, occupied, maintenance, reserved).
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.SetRoomStatusRequest true "Set Room Status Request"
// @Success 200 {object} response.Message "Room status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) SetRoomStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetRoomStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SetRoomStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room status updated successfully")
}
