package rule

import (
	"net/http"

	"atithi/infras/otel"
	"atithi/internal/domains/rule/model"
	"atithi/internal/domains/rule/model/dto"
	"atithi/internal/domains/rule/service"
	"atithi/shared/constant"
	"atithi/shared/validator"
	"atithi/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Rule
	otel    otel.Otel
}

func New(service service.Rule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rules", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRules)
		routerGroup.Post("/validate", handler.ValidateBooking)
	})
}

// GetRules retrieves the configured booking rules.
// @Summary Get booking rules
// @Description Retrieve the booking rules, optionally filtered by booking type and business unit.
// @Tags Rule
// @Accept json
// @Produce json
// @Param type query string false "Filter by booking type (HOTEL_ROOM, MARRIAGE_GARDEN)"
// @Param business_unit query string false "Filter by business unit (hotel, garden)"
// @Success 200 {object} response.Data[dto.GetRulesResponse] "List of rules"
// @Failure 500 {object} response.Error
// @Router /v1/rules [get]
func (handler *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRules")
	defer scope.End()

	ruleType := r.URL.Query().Get(model.FieldType)
	businessUnit := r.URL.Query().Get(constant.RequestParamBusinessUnit)

	rules, err := handler.service.GetAll(ctx, ruleType, businessUnit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rules retrieved successfully")

	response.WithJSON(w, http.StatusOK, rules)
}

// ValidateBooking dry-runs the booking rules against a candidate booking.
// @Summary Validate a candidate booking
// @Description Evaluate the booking rules for the given dates without creating a booking. Returns all violations at once.
// @Tags Rule
// @Accept json
// @Produce json
// @Param request body dto.ValidateBookingRequest true "Validate Booking Request"
// @Success 200 {object} response.Data[dto.ValidationResult] "Validation result"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rules/validate [post]
func (handler *Handler) ValidateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateBooking")
	defer scope.End()

	req := dto.ValidateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Validate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking rules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking rules evaluated successfully")

	response.WithJSON(w, http.StatusOK, result)
}
