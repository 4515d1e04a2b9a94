package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"atithi/config"
	"atithi/infras/otel"
	gardenModel "atithi/internal/domains/garden/model"
	gardenRepo "atithi/internal/domains/garden/repository"
	"atithi/internal/domains/pricing/model/dto"
	roomModel "atithi/internal/domains/room/model"
	roomRepo "atithi/internal/domains/room/repository"
	"atithi/shared"
	"atithi/shared/constant"
	"atithi/shared/failure"
	"atithi/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Pricing computes deterministic quotes from the configured rate card.
// It never writes and never touches the cache: a quote has to reflect the
// current base price of the resource.
type Pricing interface {
	QuoteRoom(ctx context.Context, req dto.RoomQuoteRequest) (dto.RoomQuoteResponse, error)
	QuoteGarden(ctx context.Context, req dto.GardenQuoteRequest) (dto.GardenQuoteResponse, error)
}

type serviceImpl struct {
	roomRepo   roomRepo.Room
	gardenRepo gardenRepo.Garden
	cfg        *config.Config
	otel       otel.Otel
}

func New(roomRepo roomRepo.Room, gardenRepo gardenRepo.Garden, cfg *config.Config, otel otel.Otel) Pricing {
	return &serviceImpl{
		roomRepo:   roomRepo,
		gardenRepo: gardenRepo,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) QuoteRoom(ctx context.Context, req dto.RoomQuoteRequest) (res dto.RoomQuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuoteRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := timezone.Parse(constant.DateOnlyFormat, req.CheckIn)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid check_in date: %v", err)) // nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, req.CheckOut)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid check_out date: %v", err)) // nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return res, failure.BadRequestFromString("check_in must be before check_out") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	price := room.BasePrice * float64(nights)

	if req.Guests > room.Capacity {
		extraGuests := req.Guests - room.Capacity
		price += float64(extraGuests) * float64(s.cfg.App.Booking.ExtraGuestRate) * float64(nights)
	}

	if weekday := checkIn.Weekday(); weekday == time.Friday || weekday == time.Saturday {
		price *= s.cfg.App.Booking.WeekendSurcharge
	}

	res = dto.RoomQuoteResponse{
		RoomID:     room.ID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		Nights:     nights,
		TotalPrice: math.Round(price),
	}

	return res, nil
}

func (s *serviceImpl) QuoteGarden(ctx context.Context, req dto.GardenQuoteRequest) (res dto.GardenQuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuoteGarden")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := timezone.Parse(constant.DateOnlyFormat, req.Date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date: %v", err)) // nolint:wrapcheck
	}

	garden, err := s.gardenRepo.Get(ctx, shared.FilterByID(req.GardenID, gardenModel.FieldID, gardenModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get garden")

		return res, fmt.Errorf("failed to get garden: %w", err)
	}

	if garden.ID == constant.Empty {
		return res, failure.NotFound("garden not found") // nolint:wrapcheck
	}

	price := garden.BasePrice

	switch date.Month() {
	case time.December, time.January, time.February:
		price *= s.cfg.App.Booking.PeakSeasonSurcharge
	case time.July, time.August, time.September:
		price *= s.cfg.App.Booking.MonsoonDiscount
	}

	if float64(req.Guests) > float64(garden.Capacity)*s.cfg.App.Booking.HighOccupancyThreshold {
		price *= s.cfg.App.Booking.HighOccupancySurcharge
	}

	res = dto.GardenQuoteResponse{
		GardenID:   garden.ID,
		Date:       req.Date,
		Guests:     req.Guests,
		TotalPrice: math.Round(price),
	}

	return res, nil
}
