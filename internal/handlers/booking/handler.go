package booking

import (
	"net/http"
	"time"

	"atithi/infras/otel"
	"atithi/internal/domains/booking/model"
	"atithi/internal/domains/booking/model/dto"
	"atithi/internal/domains/booking/service"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/failure"
	"atithi/shared/timezone"
	"atithi/shared/validator"
	"atithi/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/stats", handler.GetBookingStats)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}/status", handler.UpdateBookingStatus)
		routerGroup.Patch("/{id}/payment", handler.UpdatePaymentStatus)
	})

	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/rooms/{id}", handler.GetRoomAvailability)
		routerGroup.Get("/gardens/{id}", handler.GetGardenAvailability)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Create a new booking for a room or a marriage garden. The total price is computed server side.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by booking type (HOTEL_ROOM, MARRIAGE_GARDEN)"
// @Param status query string false "Filter by status (pending, confirmed, checked_in, checked_out, cancelled)"
// @Param business_unit query string false "Filter by business unit (hotel, garden)"
// @Param resource_id query string false "Filter by resource ID"
// @Param customer query string false "Filter by customer name, email, or phone"
// @Param date_from query string false "Bookings with check_in on or after this date (YYYY-MM-DD)"
// @Param date_to query string false "Bookings with check_out on or before this date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup, err := bookingFilter(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid booking filter")

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

func bookingFilter(r *http.Request) (gDto.FilterGroup, error) {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	equalityFilters := map[string]string{
		model.FieldType:         r.URL.Query().Get(model.FieldType),
		model.FieldStatus:       r.URL.Query().Get(model.FieldStatus),
		model.FieldBusinessUnit: r.URL.Query().Get(constant.RequestParamBusinessUnit),
		model.FieldResourceID:   r.URL.Query().Get(model.FieldResourceID),
	}

	for _, field := range []string{model.FieldType, model.FieldStatus, model.FieldBusinessUnit, model.FieldResourceID} {
		if equalityFilters[field] == "" {
			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    equalityFilters[field],
			Table:    model.TableName,
		})
	}

	// A customer can be looked up by whichever detail the front desk has on
	// hand, so the one param matches name, email, or phone.
	if customer := r.URL.Query().Get(constant.RequestParamCustomer); customer != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					ArgName:  model.FieldCustomerName,
					Field:    model.FieldCustomerName,
					Operator: gDto.FilterOperatorEq,
					Value:    customer,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  model.FieldCustomerEmail,
					Field:    model.FieldCustomerEmail,
					Operator: gDto.FilterOperatorEq,
					Value:    customer,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  model.FieldCustomerPhone,
					Field:    model.FieldCustomerPhone,
					Operator: gDto.FilterOperatorEq,
					Value:    customer,
					Table:    model.TableName,
				},
			},
		})
	}

	if dateFrom := r.URL.Query().Get(constant.RequestParamDateFrom); dateFrom != "" {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, dateFrom)
		if err != nil {
			return filterGroup, failure.BadRequestFromString("date_from must be formatted as YYYY-MM-DD") // nolint:wrapcheck
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  constant.RequestParamDateFrom,
			Field:    model.FieldCheckIn,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    parsed,
			Table:    model.TableName,
		})
	}

	if dateTo := r.URL.Query().Get(constant.RequestParamDateTo); dateTo != "" {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, dateTo)
		if err != nil {
			return filterGroup, failure.BadRequestFromString("date_to must be formatted as YYYY-MM-DD") // nolint:wrapcheck
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  constant.RequestParamDateTo,
			Field:    model.FieldCheckOut,
			Operator: gDto.FilterOperatorLessEq,
			Value:    parsed,
			Table:    model.TableName,
		})
	}

	return filterGroup, nil
}

// GetBookingStats retrieves aggregated booking statistics for a business unit.
// @Summary Get booking statistics
// @Description Retrieve booking totals, revenue, and (for the hotel unit) the current occupancy rate.
// @Tags Booking
// @Accept json
// @Produce json
// @Param business_unit query string true "Business unit (hotel, garden)"
// @Param date_from query string false "Window start (YYYY-MM-DD)"
// @Param date_to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.StatsResponse] "Booking statistics"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/stats [get]
// @Security BearerAuth
func (handler *Handler) GetBookingStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingStats")
	defer scope.End()

	businessUnit := r.URL.Query().Get(constant.RequestParamBusinessUnit)
	if err := validator.ValidateVar(businessUnit, "required,oneof=hotel garden"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid business_unit parameter")

		response.WithError(w, err)

		return
	}

	var dateFrom, dateTo *time.Time

	if raw := r.URL.Query().Get(constant.RequestParamDateFrom); raw != "" {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, raw)
		if err != nil {
			scope.TraceError(err)

			response.WithMessage(w, http.StatusBadRequest, "date_from must be formatted as YYYY-MM-DD")

			return
		}

		dateFrom = &parsed
	}

	if raw := r.URL.Query().Get(constant.RequestParamDateTo); raw != "" {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, raw)
		if err != nil {
			scope.TraceError(err)

			response.WithMessage(w, http.StatusBadRequest, "date_to must be formatted as YYYY-MM-DD")

			return
		}

		dateTo = &parsed
	}

	stats, err := handler.service.Stats(ctx, businessUnit, dateFrom, dateTo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBookingStatus applies a lifecycle transition to a booking.
// @Summary Update booking status
// @Description Transition a booking through its lifecycle (pending, confirmed, checked_in, checked_out, cancelled).
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "Update Booking Status Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.SetStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking status updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdatePaymentStatus applies a payment transition to a booking.
// @Summary Update payment status
// @Description Transition a booking's payment status (pending, partial, paid, refunded).
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdatePaymentStatusRequest true "Update Payment Status Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payment [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePaymentStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePaymentStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.SetPaymentStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment status updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, booking)
}

// GetRoomAvailability checks whether a room is free for a date range.
// @Summary Check room availability
// @Description Check whether a room is available for the given check-in and check-out dates.
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability result"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/rooms/{id} [get]
func (handler *Handler) GetRoomAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	checkIn, err := timezone.Parse(constant.DateOnlyFormat, r.URL.Query().Get(constant.RequestParamCheckIn))
	if err != nil {
		scope.TraceError(err)

		response.WithMessage(w, http.StatusBadRequest, "check_in must be formatted as YYYY-MM-DD")

		return
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, r.URL.Query().Get(constant.RequestParamCheckOut))
	if err != nil {
		scope.TraceError(err)

		response.WithMessage(w, http.StatusBadRequest, "check_out must be formatted as YYYY-MM-DD")

		return
	}

	available, err := handler.service.IsRoomAvailable(ctx, id, checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check room availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room availability checked successfully")

	response.WithJSON(w, http.StatusOK, dto.AvailabilityResponse{ResourceID: id, Available: available})
}

// GetGardenAvailability checks whether a garden is free on a date.
// @Summary Check garden availability
// @Description Check whether a marriage garden is available on the given date.
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Garden ID"
// @Param date query string true "Event date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability result"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/gardens/{id} [get]
func (handler *Handler) GetGardenAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGardenAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	date, err := timezone.Parse(constant.DateOnlyFormat, r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)

		response.WithMessage(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")

		return
	}

	available, err := handler.service.IsGardenAvailable(ctx, id, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check garden availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Garden availability checked successfully")

	response.WithJSON(w, http.StatusOK, dto.AvailabilityResponse{ResourceID: id, Available: available})
}
