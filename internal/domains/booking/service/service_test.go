package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atithi/config"
	"atithi/infras/otel/mocks"
	bookingMocks "atithi/internal/domains/booking/mocks"
	"atithi/internal/domains/booking/model"
	"atithi/internal/domains/booking/model/dto"
	"atithi/internal/domains/booking/repository"
	"atithi/internal/domains/booking/service"
	gardenMocks "atithi/internal/domains/garden/mocks"
	gardenModel "atithi/internal/domains/garden/model"
	pricingSvc "atithi/internal/domains/pricing/service"
	ruleMocks "atithi/internal/domains/rule/mocks"
	ruleModel "atithi/internal/domains/rule/model"
	ruleSvc "atithi/internal/domains/rule/service"
	roomMocks "atithi/internal/domains/room/mocks"
	roomModel "atithi/internal/domains/room/model"
	eventMocks "atithi/internal/events/mocks"
	cacheMocks "atithi/shared/cache/mocks"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/failure"
	"atithi/shared/timezone"
)

type fixture struct {
	repo       *bookingMocks.MockBooking
	roomRepo   *roomMocks.MockRoom
	gardenRepo *gardenMocks.MockGarden
	ruleRepo   *ruleMocks.MockRule
	publisher  *eventMocks.MockPublisher
	cache      *cacheMocks.MockRedisCache
	svc        service.Booking
}

func newFixture(t *testing.T, opts ...func(*config.Config)) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:       bookingMocks.NewMockBooking(ctrl),
		roomRepo:   roomMocks.NewMockRoom(ctrl),
		gardenRepo: gardenMocks.NewMockGarden(ctrl),
		ruleRepo:   ruleMocks.NewMockRule(ctrl),
		publisher:  eventMocks.NewMockPublisher(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Booking.ExtraGuestRate = 25
	cfg.App.Booking.WeekendSurcharge = 1.20
	cfg.App.Booking.PeakSeasonSurcharge = 1.30
	cfg.App.Booking.MonsoonDiscount = 0.80
	cfg.App.Booking.HighOccupancySurcharge = 1.10
	cfg.App.Booking.HighOccupancyThreshold = 0.8

	for _, opt := range opts {
		opt(cfg)
	}

	mockOtel := mocks.NewOtel()

	rules := ruleSvc.New(f.ruleRepo, cfg, f.cache, mockOtel)
	pricing := pricingSvc.New(f.roomRepo, f.gardenRepo, cfg, mockOtel)

	f.svc = service.New(f.repo, f.roomRepo, f.gardenRepo, rules, pricing, f.publisher, cfg, f.cache, mockOtel)

	return f
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestBookingService_Create(t *testing.T) {
	availableRoom := roomModel.Room{
		ID:        "room-1",
		Number:    "101",
		Capacity:  2,
		BasePrice: 100,
		Status:    roomModel.StatusAvailable,
	}

	req := dto.CreateBookingRequest{
		Type:         model.TypeHotelRoom,
		ResourceID:   "room-1",
		CustomerName: "Asha Verma",
		CheckIn:      "2027-05-10",
		CheckOut:     "2027-05-12",
		Guests:       2,
		BusinessUnit: model.UnitHotel,
	}

	t.Run("successful creation", func(t *testing.T) {
		f := newFixture(t)

		f.ruleRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]ruleModel.Rule{}, nil)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom, nil).
			Times(2)

		f.repo.EXPECT().
			CreateAtomic(gomock.Any(), gomock.Any(), false).
			Return(nil)

		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.publisher.EXPECT().BookingCreated(gomock.Any(), gomock.Any()).AnyTimes()

		res, err := f.svc.Create(userContext(), req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Equal(t, model.PaymentPending, res.PaymentStatus)
		assert.Equal(t, "test-user-id", res.CreatedBy)
	})

	t.Run("overlap conflict", func(t *testing.T) {
		f := newFixture(t)

		f.ruleRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]ruleModel.Rule{}, nil)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom, nil).
			Times(2)

		f.repo.EXPECT().
			CreateAtomic(gomock.Any(), gomock.Any(), false).
			Return(repository.ErrOverlap)

		_, err := f.svc.Create(userContext(), req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("rule violations reported together", func(t *testing.T) {
		f := newFixture(t)

		f.ruleRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]ruleModel.Rule{
				{Rule: ruleModel.KindMinDays, Value: 5},
			}, nil)

		_, err := f.svc.Create(userContext(), req)

		assert.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
		assert.Equal(t, []string{"Minimum booking period is 5 days"}, failure.GetDetails(err))
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.ruleRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]ruleModel.Rule{}, nil)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{}, nil)

		_, err := f.svc.Create(userContext(), req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("room under maintenance", func(t *testing.T) {
		f := newFixture(t)

		room := availableRoom
		room.Status = roomModel.StatusMaintenance

		f.ruleRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]ruleModel.Rule{}, nil)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil).
			Times(2)

		_, err := f.svc.Create(userContext(), req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("garden booking without check_out", func(t *testing.T) {
		f := newFixture(t)

		gardenReq := dto.CreateBookingRequest{
			Type:         model.TypeMarriageGarden,
			ResourceID:   "garden-1",
			CustomerName: "Asha Verma",
			CheckIn:      "2027-05-10",
			Guests:       200,
			BusinessUnit: model.UnitGarden,
		}

		f.ruleRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]ruleModel.Rule{}, nil)

		f.gardenRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(gardenModel.Garden{
				ID:        "garden-1",
				Capacity:  500,
				BasePrice: 5000,
				Status:    gardenModel.StatusAvailable,
			}, nil).
			Times(2)

		f.repo.EXPECT().
			CreateAtomic(gomock.Any(), gomock.Any(), false).
			Return(nil)

		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.publisher.EXPECT().BookingCreated(gomock.Any(), gomock.Any()).AnyTimes()

		res, err := f.svc.Create(userContext(), gardenReq)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, res.CheckIn, res.CheckOut)
		assert.Equal(t, float64(5000), res.TotalPrice)
	})

	t.Run("same-day turnover applies to hotel stays", func(t *testing.T) {
		f := newFixture(t, func(cfg *config.Config) {
			cfg.App.Booking.SameDayTurnover = true
		})

		f.ruleRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]ruleModel.Rule{}, nil)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom, nil).
			Times(2)

		f.repo.EXPECT().
			CreateAtomic(gomock.Any(), gomock.Any(), true).
			Return(nil)

		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.publisher.EXPECT().BookingCreated(gomock.Any(), gomock.Any()).AnyTimes()

		_, err := f.svc.Create(userContext(), req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("same-day turnover never applies to gardens", func(t *testing.T) {
		f := newFixture(t, func(cfg *config.Config) {
			cfg.App.Booking.SameDayTurnover = true
		})

		gardenReq := dto.CreateBookingRequest{
			Type:         model.TypeMarriageGarden,
			ResourceID:   "garden-1",
			CustomerName: "Asha Verma",
			CheckIn:      "2027-05-10",
			Guests:       200,
			BusinessUnit: model.UnitGarden,
		}

		f.ruleRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]ruleModel.Rule{}, nil)

		f.gardenRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(gardenModel.Garden{
				ID:        "garden-1",
				Capacity:  500,
				BasePrice: 5000,
				Status:    gardenModel.StatusAvailable,
			}, nil).
			Times(2)

		// A garden booking occupies a single date, so the re-check must stay
		// inclusive even with the turnover flag on; otherwise two bookings
		// for the same date would both pass the half-open comparison.
		f.repo.EXPECT().
			CreateAtomic(gomock.Any(), gomock.Any(), false).
			Return(nil)

		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.publisher.EXPECT().BookingCreated(gomock.Any(), gomock.Any()).AnyTimes()

		_, err := f.svc.Create(userContext(), gardenReq)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("booking dates normalized to the app timezone", func(t *testing.T) {
		f := newFixture(t)

		f.ruleRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]ruleModel.Rule{}, nil)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom, nil).
			Times(2)

		var stored model.Booking

		f.repo.EXPECT().
			CreateAtomic(gomock.Any(), gomock.Any(), false).
			DoAndReturn(func(_ context.Context, booking model.Booking, _ bool) error {
				stored = booking

				return nil
			})

		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.publisher.EXPECT().BookingCreated(gomock.Any(), gomock.Any()).AnyTimes()

		_, err := f.svc.Create(userContext(), req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, timezone.GetLocation(), stored.CheckIn.Location())
		assert.True(t, timezone.DayStart(stored.CheckIn).Equal(stored.CheckIn))
		assert.True(t, timezone.DayStart(stored.CheckOut).Equal(stored.CheckOut))
	})
}

func TestBookingService_IsRoomAvailable(t *testing.T) {
	checkIn := time.Date(2027, 5, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2027, 5, 12, 0, 0, 0, 0, time.UTC)

	t.Run("available", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: "room-1", Status: roomModel.StatusAvailable}, nil)

		f.repo.EXPECT().
			CountOverlapping(gomock.Any(), "room-1", checkIn, checkOut, false).
			Return(0, nil)

		available, err := f.svc.IsRoomAvailable(context.Background(), "room-1", checkIn, checkOut)

		assert.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("overlapping booking", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: "room-1", Status: roomModel.StatusAvailable}, nil)

		f.repo.EXPECT().
			CountOverlapping(gomock.Any(), "room-1", checkIn, checkOut, false).
			Return(1, nil)

		available, err := f.svc.IsRoomAvailable(context.Background(), "room-1", checkIn, checkOut)

		assert.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("room not available by status", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: "room-1", Status: roomModel.StatusOccupied}, nil)

		available, err := f.svc.IsRoomAvailable(context.Background(), "room-1", checkIn, checkOut)

		assert.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("invalid range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.IsRoomAvailable(context.Background(), "room-1", checkOut, checkIn)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{}, nil)

		_, err := f.svc.IsRoomAvailable(context.Background(), "missing", checkIn, checkOut)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_IsGardenAvailable(t *testing.T) {
	date := time.Date(2027, 5, 10, 15, 30, 0, 0, time.UTC)

	t.Run("available", func(t *testing.T) {
		f := newFixture(t)

		f.gardenRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(gardenModel.Garden{ID: "garden-1", Status: gardenModel.StatusAvailable}, nil)

		f.repo.EXPECT().
			CountOverlapping(gomock.Any(), "garden-1", gomock.Any(), gomock.Any(), false).
			Return(0, nil)

		available, err := f.svc.IsGardenAvailable(context.Background(), "garden-1", date)

		assert.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("same date already booked", func(t *testing.T) {
		f := newFixture(t)

		f.gardenRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(gardenModel.Garden{ID: "garden-1", Status: gardenModel.StatusAvailable}, nil)

		f.repo.EXPECT().
			CountOverlapping(gomock.Any(), "garden-1", gomock.Any(), gomock.Any(), false).
			Return(1, nil)

		available, err := f.svc.IsGardenAvailable(context.Background(), "garden-1", date)

		assert.NoError(t, err)
		assert.False(t, available)
	})
}

func TestBookingService_SetStatus(t *testing.T) {
	confirmedRoomBooking := model.Booking{
		ID:           "booking-1",
		Type:         model.TypeHotelRoom,
		ResourceID:   "room-1",
		Status:       model.StatusConfirmed,
		BusinessUnit: model.UnitHotel,
	}

	t.Run("check_in occupies the room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedRoomBooking, nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.roomRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "occupied", fields["status"])

				return nil
			})

		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.publisher.EXPECT().BookingStatusChanged(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

		res, err := f.svc.SetStatus(userContext(), dto.UpdateBookingStatusRequest{Status: model.StatusCheckedIn}, "booking-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCheckedIn, res.Status)
	})

	t.Run("cancellation frees the room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedRoomBooking, nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.roomRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "available", fields["status"])

				return nil
			})

		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.publisher.EXPECT().BookingStatusChanged(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

		res, err := f.svc.SetStatus(userContext(), dto.UpdateBookingStatusRequest{Status: model.StatusCancelled}, "booking-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, res.Status)
	})

	t.Run("invalid transition", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{
				ID:           "booking-2",
				Status:       model.StatusPending,
				BusinessUnit: model.UnitHotel,
			}, nil)

		_, err := f.svc.SetStatus(userContext(), dto.UpdateBookingStatusRequest{Status: model.StatusCheckedIn}, "booking-2")

		assert.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("garden booking cannot check in", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{
				ID:           "booking-3",
				Status:       model.StatusConfirmed,
				BusinessUnit: model.UnitGarden,
			}, nil)

		_, err := f.svc.SetStatus(userContext(), dto.UpdateBookingStatusRequest{Status: model.StatusCheckedIn}, "booking-3")

		assert.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("cancelling a cancelled booking is a no-op", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{
				ID:           "booking-4",
				Status:       model.StatusCancelled,
				BusinessUnit: model.UnitHotel,
			}, nil)

		res, err := f.svc.SetStatus(userContext(), dto.UpdateBookingStatusRequest{Status: model.StatusCancelled}, "booking-4")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, res.Status)
	})

	t.Run("booking not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := f.svc.SetStatus(userContext(), dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed}, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_SetPaymentStatus(t *testing.T) {
	t.Run("pending to paid", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{
				ID:            "booking-1",
				PaymentStatus: model.PaymentPending,
				BusinessUnit:  model.UnitHotel,
			}, nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.publisher.EXPECT().BookingPaymentChanged(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

		res, err := f.svc.SetPaymentStatus(userContext(), dto.UpdatePaymentStatusRequest{PaymentStatus: model.PaymentPaid}, "booking-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.PaymentPaid, res.PaymentStatus)
	})

	t.Run("refunded is terminal", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{
				ID:            "booking-2",
				PaymentStatus: model.PaymentRefunded,
				BusinessUnit:  model.UnitHotel,
			}, nil)

		_, err := f.svc.SetPaymentStatus(userContext(), dto.UpdatePaymentStatusRequest{PaymentStatus: model.PaymentPending}, "booking-2")

		assert.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})
}

func TestBookingService_Stats(t *testing.T) {
	t.Run("hotel stats with occupancy", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{
				{Status: model.StatusConfirmed, TotalPrice: 200},
				{Status: model.StatusCheckedIn, TotalPrice: 450},
				{Status: model.StatusCancelled, TotalPrice: 100},
				{Status: model.StatusPending, TotalPrice: 80},
			}, nil)

		f.roomRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(10, nil)

		f.roomRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(3, nil)

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.Stats(context.Background(), model.UnitHotel, nil, nil)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 4, res.TotalBookings)
		assert.Equal(t, 2, res.ConfirmedBookings)
		assert.Equal(t, 1, res.CancelledBookings)
		assert.Equal(t, float64(650), res.TotalRevenue)

		if assert.NotNil(t, res.OccupancyRate) {
			assert.InDelta(t, 30.0, *res.OccupancyRate, 0.001)
		}
	})

	t.Run("garden stats have no occupancy", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{
				{Status: model.StatusConfirmed, TotalPrice: 5000},
			}, nil)

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.Stats(context.Background(), model.UnitGarden, nil, nil)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalBookings)
		assert.Nil(t, res.OccupancyRate)
	})
}
