package pricing

import (
	"net/http"
	"strconv"

	"atithi/infras/otel"
	"atithi/internal/domains/pricing/model/dto"
	"atithi/internal/domains/pricing/service"
	"atithi/shared/constant"
	"atithi/shared/validator"
	"atithi/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/quotes", func(routerGroup chi.Router) {
		routerGroup.Get("/rooms/{id}", handler.QuoteRoom)
		routerGroup.Get("/gardens/{id}", handler.QuoteGarden)
	})
}

// QuoteRoom calculates the price of a room stay without creating a booking.
// @Summary Quote a room stay
// @Description Calculate the total price for a room stay, including extra guest charges and the weekend surcharge.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int true "Number of guests"
// @Success 200 {object} response.Data[dto.RoomQuoteResponse] "Room quote"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quotes/rooms/{id} [get]
func (handler *Handler) QuoteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QuoteRoom")
	defer scope.End()

	guests, err := strconv.Atoi(r.URL.Query().Get(constant.RequestParamGuests))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid guests parameter")

		response.WithMessage(w, http.StatusBadRequest, "guests must be an integer")

		return
	}

	req := dto.RoomQuoteRequest{
		RoomID:   chi.URLParam(r, constant.RequestParamID),
		CheckIn:  r.URL.Query().Get(constant.RequestParamCheckIn),
		CheckOut: r.URL.Query().Get(constant.RequestParamCheckOut),
		Guests:   guests,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate quote request")

		response.WithError(w, err)

		return
	}

	quote, err := handler.service.QuoteRoom(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room quote calculated successfully")

	response.WithJSON(w, http.StatusOK, quote)
}

// QuoteGarden calculates the price of a garden event without creating a booking.
// @Summary Quote a garden event
// @Description Calculate the total price for a garden event, including seasonal adjustments and the large event surcharge.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Garden ID"
// @Param date query string true "Event date (YYYY-MM-DD)"
// @Param guests query int true "Number of guests"
// @Success 200 {object} response.Data[dto.GardenQuoteResponse] "Garden quote"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quotes/gardens/{id} [get]
func (handler *Handler) QuoteGarden(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QuoteGarden")
	defer scope.End()

	guests, err := strconv.Atoi(r.URL.Query().Get(constant.RequestParamGuests))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid guests parameter")

		response.WithMessage(w, http.StatusBadRequest, "guests must be an integer")

		return
	}

	req := dto.GardenQuoteRequest{
		GardenID: chi.URLParam(r, constant.RequestParamID),
		Date:     r.URL.Query().Get(constant.RequestParamDate),
		Guests:   guests,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate quote request")

		response.WithError(w, err)

		return
	}

	quote, err := handler.service.QuoteGarden(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote garden")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Garden quote calculated successfully")

	response.WithJSON(w, http.StatusOK, quote)
}
