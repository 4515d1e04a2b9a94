package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"atithi/config"
	"atithi/infras/otel"
	"atithi/internal/domains/booking/model"
	"atithi/internal/domains/booking/model/dto"
	"atithi/internal/domains/booking/repository"
	gardenModel "atithi/internal/domains/garden/model"
	gardenRepo "atithi/internal/domains/garden/repository"
	pricingDto "atithi/internal/domains/pricing/model/dto"
	pricingSvc "atithi/internal/domains/pricing/service"
	ruleDto "atithi/internal/domains/rule/model/dto"
	ruleSvc "atithi/internal/domains/rule/service"
	roomModel "atithi/internal/domains/room/model"
	roomRepo "atithi/internal/domains/room/repository"
	"atithi/internal/events"
	"atithi/shared"
	"atithi/shared/cache"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/failure"
	"atithi/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheStatsBooking  = "booking:stats"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	SetStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (dto.BookingResponse, error)
	SetPaymentStatus(ctx context.Context, req dto.UpdatePaymentStatusRequest, id string) (dto.BookingResponse, error)
	IsRoomAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
	IsGardenAvailable(ctx context.Context, gardenID string, date time.Time) (bool, error)
	Stats(ctx context.Context, businessUnit string, dateFrom, dateTo *time.Time) (dto.StatsResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	roomRepo   roomRepo.Room
	gardenRepo gardenRepo.Garden
	rules      ruleSvc.Rule
	pricing    pricingSvc.Pricing
	publisher  events.Publisher
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	gardenRepo gardenRepo.Garden,
	rules ruleSvc.Rule,
	pricing pricingSvc.Pricing,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		gardenRepo: gardenRepo,
		rules:      rules,
		pricing:    pricing,
		publisher:  publisher,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// Create validates, prices, and atomically inserts a new booking. The
// availability re-check happens inside the repository transaction, so a quote
// or an earlier availability read can never be trusted into a double booking.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	validation, err := s.rules.Validate(ctx, ruleDto.ValidateBookingRequest{
		Type:         req.Type,
		BusinessUnit: req.BusinessUnit,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if !validation.Valid {
		return res, failure.ValidationFailed(validation.Errors) // nolint:wrapcheck
	}

	totalPrice, err := s.quote(ctx, req)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	booking, err := req.ToModel(user, totalPrice)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	available, err := s.resourceAvailable(ctx, booking.BusinessUnit, booking.ResourceID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if !available {
		return res, failure.Conflict("resource is not available for booking") // nolint:wrapcheck
	}

	// Same-day turnover only applies to hotel stays. Garden bookings are
	// single-date (check_in == check_out), so they always use the inclusive
	// comparison: the strict half-open test can never match two bookings on
	// the same date.
	strict := s.cfg.App.Booking.SameDayTurnover && booking.BusinessUnit == model.UnitHotel

	err = s.repo.CreateAtomic(ctx, booking, strict)
	if errors.Is(err, repository.ErrOverlap) {
		return res, failure.Conflict("resource is already booked for the requested dates") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheStatsBooking)

		s.publisher.BookingCreated(c, booking)
	}()

	return res, nil
}

// quote prices the request server side; the client never supplies the total.
func (s *serviceImpl) quote(ctx context.Context, req dto.CreateBookingRequest) (float64, error) {
	if req.BusinessUnit == model.UnitGarden {
		quote, err := s.pricing.QuoteGarden(ctx, pricingDto.GardenQuoteRequest{
			GardenID: req.ResourceID,
			Date:     req.CheckIn,
			Guests:   req.Guests,
		})
		if err != nil {
			return 0, err // nolint:wrapcheck
		}

		return quote.TotalPrice, nil
	}

	checkOut := req.CheckOut
	if checkOut == "" {
		checkOut = req.CheckIn
	}

	quote, err := s.pricing.QuoteRoom(ctx, pricingDto.RoomQuoteRequest{
		RoomID:   req.ResourceID,
		CheckIn:  req.CheckIn,
		CheckOut: checkOut,
		Guests:   req.Guests,
	})
	if err != nil {
		return 0, err // nolint:wrapcheck
	}

	return quote.TotalPrice, nil
}

// resourceAvailable checks the catalog status only; overlap is re-checked
// atomically inside CreateAtomic.
func (s *serviceImpl) resourceAvailable(ctx context.Context, businessUnit, resourceID string) (bool, error) {
	if businessUnit == model.UnitGarden {
		garden, err := s.gardenRepo.Get(ctx, shared.FilterByID(resourceID, gardenModel.FieldID, gardenModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get garden")

			return false, fmt.Errorf("failed to get garden: %w", err)
		}

		if garden.ID == constant.Empty {
			return false, failure.NotFound("garden not found") // nolint:wrapcheck
		}

		return garden.Status == gardenModel.StatusAvailable, nil
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(resourceID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return false, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return false, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room.Status == roomModel.StatusAvailable, nil
}

func (s *serviceImpl) IsRoomAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (res bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsRoomAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !checkIn.Before(checkOut) {
		return false, failure.BadRequestFromString("check_in must be before check_out") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return false, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return false, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Status != roomModel.StatusAvailable {
		return false, nil
	}

	overlapping, err := s.repo.CountOverlapping(ctx, roomID, checkIn, checkOut, s.cfg.App.Booking.SameDayTurnover)
	if err != nil {
		log.Error().Err(err).Msg("failed to count overlapping bookings")

		return false, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	return overlapping == 0, nil
}

func (s *serviceImpl) IsGardenAvailable(ctx context.Context, gardenID string, date time.Time) (res bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsGardenAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	garden, err := s.gardenRepo.Get(ctx, shared.FilterByID(gardenID, gardenModel.FieldID, gardenModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get garden")

		return false, fmt.Errorf("failed to get garden: %w", err)
	}

	if garden.ID == constant.Empty {
		return false, failure.NotFound("garden not found") // nolint:wrapcheck
	}

	if garden.Status != gardenModel.StatusAvailable {
		return false, nil
	}

	// Garden bookings are single-date; the inclusive comparison makes the
	// overlap test a calendar-date equality check.
	day := timezone.DayStart(date)

	overlapping, err := s.repo.CountOverlapping(ctx, gardenID, day, day, false)
	if err != nil {
		log.Error().Err(err).Msg("failed to count overlapping bookings")

		return false, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	return overlapping == 0, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// SetStatus applies a lifecycle transition and mirrors it onto the resource.
// Cancelling an already cancelled booking is an accepted no-op.
func (s *serviceImpl) SetStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if booking.Status == model.StatusCancelled && req.Status == model.StatusCancelled {
		res.FromModel(booking)

		return res, nil
	}

	if !model.CanTransition(booking.BusinessUnit, booking.Status, req.Status) {
		return res, failure.InvalidTransition(fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, req.Status)) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	if err = s.mirrorResourceStatus(ctx, booking, req.Status, user); err != nil {
		return res, err // nolint:wrapcheck
	}

	previous := booking.Status
	booking.Status = req.Status

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheStatsBooking)

		s.publisher.BookingStatusChanged(c, booking, previous)
	}()

	return res, nil
}

// mirrorResourceStatus is the single writer of catalog status: no other
// component mutates it.
func (s *serviceImpl) mirrorResourceStatus(ctx context.Context, booking model.Booking, newStatus, user string) error {
	resourceStatus, ok := model.ResourceStatusFor(booking.BusinessUnit, newStatus)
	if !ok {
		return nil
	}

	updatedFields := map[string]any{
		"status":                 resourceStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if booking.BusinessUnit == model.UnitGarden {
		filter := shared.FilterByID(booking.ResourceID, gardenModel.FieldID, gardenModel.TableName)
		if err := s.gardenRepo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to mirror status onto garden")

			return fmt.Errorf("failed to mirror status onto garden: %w", err)
		}

		return nil
	}

	filter := shared.FilterByID(booking.ResourceID, roomModel.FieldID, roomModel.TableName)
	if err := s.roomRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to mirror status onto room")

		return fmt.Errorf("failed to mirror status onto room: %w", err)
	}

	return nil
}

func (s *serviceImpl) SetPaymentStatus(ctx context.Context, req dto.UpdatePaymentStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetPaymentStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if !model.CanTransitionPayment(booking.PaymentStatus, req.PaymentStatus) {
		return res, failure.InvalidTransition(fmt.Sprintf("cannot transition payment from %s to %s", booking.PaymentStatus, req.PaymentStatus)) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldPaymentStatus: req.PaymentStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update payment status")

		return res, fmt.Errorf("failed to update payment status: %w", err)
	}

	previous := booking.PaymentStatus
	booking.PaymentStatus = req.PaymentStatus

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)

		s.publisher.BookingPaymentChanged(c, booking, previous)
	}()

	return res, nil
}

// Stats aggregates bookings for a business unit over an optional date window.
// The occupancy rate is a snapshot of current room status, not a historical
// rate over the window.
func (s *serviceImpl) Stats(ctx context.Context, businessUnit string, dateFrom, dateTo *time.Time) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	from := constant.Empty
	if dateFrom != nil {
		from = dateFrom.Format(constant.DateOnlyFormat)
	}

	to := constant.Empty
	if dateTo != nil {
		to = dateTo.Format(constant.DateOnlyFormat)
	}

	cacheKey := shared.BuildCacheKey(cacheStatsBooking, businessUnit, from, to)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking stats")

		return res, nil
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBusinessUnit,
				Operator: gDto.FilterOperatorEq,
				Value:    businessUnit,
				Table:    model.TableName,
			},
		},
	}

	if dateFrom != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "date_from",
			Field:    model.FieldCheckIn,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    *dateFrom,
			Table:    model.TableName,
		})
	}

	if dateTo != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "date_to",
			Field:    model.FieldCheckOut,
			Operator: gDto.FilterOperatorLessEq,
			Value:    *dateTo,
			Table:    model.TableName,
		})
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filterGroup)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for stats")

		return res, fmt.Errorf("failed to get bookings for stats: %w", err)
	}

	res.TotalBookings = len(bookings)

	for _, booking := range bookings {
		switch booking.Status {
		case model.StatusConfirmed, model.StatusCheckedIn:
			res.ConfirmedBookings++
			res.TotalRevenue += booking.TotalPrice
		case model.StatusCancelled:
			res.CancelledBookings++
		}
	}

	if businessUnit == model.UnitHotel {
		rate, err := s.occupancyRate(ctx)
		if err != nil {
			return res, err // nolint:wrapcheck
		}

		res.OccupancyRate = &rate
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking stats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) occupancyRate(ctx context.Context) (float64, error) {
	totalRooms, err := s.roomRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	if totalRooms == 0 {
		return 0, nil
	}

	occupiedRooms, err := s.roomRepo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    roomModel.StatusOccupied,
				Table:    roomModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count occupied rooms")

		return 0, fmt.Errorf("failed to count occupied rooms: %w", err)
	}

	return float64(occupiedRooms) / float64(totalRooms) * 100, nil
}
