package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atithi/config"
	"atithi/infras/otel/mocks"
	gardenMocks "atithi/internal/domains/garden/mocks"
	gardenModel "atithi/internal/domains/garden/model"
	"atithi/internal/domains/pricing/model/dto"
	"atithi/internal/domains/pricing/service"
	roomMocks "atithi/internal/domains/room/mocks"
	roomModel "atithi/internal/domains/room/model"
	"atithi/shared/failure"
)

func pricingConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Booking.ExtraGuestRate = 25
	cfg.App.Booking.WeekendSurcharge = 1.20
	cfg.App.Booking.PeakSeasonSurcharge = 1.30
	cfg.App.Booking.MonsoonDiscount = 0.80
	cfg.App.Booking.HighOccupancySurcharge = 1.10
	cfg.App.Booking.HighOccupancyThreshold = 0.8

	return cfg
}

func TestPricingService_QuoteRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockGardenRepo := gardenMocks.NewMockGarden(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRoomRepo, mockGardenRepo, pricingConfig(), mockOtel)

	tests := []struct {
		name      string
		req       dto.RoomQuoteRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantPrice float64
	}{
		{
			name: "weekend surcharge on saturday check-in",
			req: dto.RoomQuoteRequest{
				RoomID:   "room-1",
				CheckIn:  "2026-09-05", // Saturday
				CheckOut: "2026-09-07",
				Guests:   1,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "room-1", Capacity: 1, BasePrice: 100}, nil)
			},
			wantPrice: 240,
		},
		{
			name: "extra guest surcharge on weekday",
			req: dto.RoomQuoteRequest{
				RoomID:   "room-2",
				CheckIn:  "2026-09-08", // Tuesday
				CheckOut: "2026-09-09",
				Guests:   3,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "room-2", Capacity: 2, BasePrice: 80}, nil)
			},
			wantPrice: 105,
		},
		{
			name: "unknown room",
			req: dto.RoomQuoteRequest{
				RoomID:   "missing",
				CheckIn:  "2026-09-08",
				CheckOut: "2026-09-09",
				Guests:   1,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "check_in not before check_out",
			req: dto.RoomQuoteRequest{
				RoomID:   "room-1",
				CheckIn:  "2026-09-09",
				CheckOut: "2026-09-08",
				Guests:   1,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "invalid check_in format",
			req: dto.RoomQuoteRequest{
				RoomID:   "room-1",
				CheckIn:  "09/08/2026",
				CheckOut: "2026-09-09",
				Guests:   1,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.QuoteRoom(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantPrice, res.TotalPrice)
		})
	}
}

func TestPricingService_QuoteRoom_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockGardenRepo := gardenMocks.NewMockGarden(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRoomRepo, mockGardenRepo, pricingConfig(), mockOtel)

	mockRoomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(roomModel.Room{ID: "room-1", Capacity: 2, BasePrice: 150}, nil).
		Times(2)

	req := dto.RoomQuoteRequest{
		RoomID:   "room-1",
		CheckIn:  "2026-09-11", // Friday
		CheckOut: "2026-09-14",
		Guests:   4,
	}

	first, err := svc.QuoteRoom(context.Background(), req)
	assert.NoError(t, err)

	second, err := svc.QuoteRoom(context.Background(), req)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPricingService_QuoteGarden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockGardenRepo := gardenMocks.NewMockGarden(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRoomRepo, mockGardenRepo, pricingConfig(), mockOtel)

	tests := []struct {
		name      string
		req       dto.GardenQuoteRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantPrice float64
	}{
		{
			name: "peak season with high occupancy",
			req: dto.GardenQuoteRequest{
				GardenID: "garden-1",
				Date:     "2027-01-15",
				Guests:   500,
			},
			setupMock: func() {
				mockGardenRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(gardenModel.Garden{ID: "garden-1", Capacity: 500, BasePrice: 3000}, nil)
			},
			wantPrice: 4290,
		},
		{
			name: "monsoon discount",
			req: dto.GardenQuoteRequest{
				GardenID: "garden-1",
				Date:     "2026-08-20",
				Guests:   100,
			},
			setupMock: func() {
				mockGardenRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(gardenModel.Garden{ID: "garden-1", Capacity: 500, BasePrice: 5000}, nil)
			},
			wantPrice: 4000,
		},
		{
			name: "off season base price",
			req: dto.GardenQuoteRequest{
				GardenID: "garden-1",
				Date:     "2026-10-20",
				Guests:   100,
			},
			setupMock: func() {
				mockGardenRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(gardenModel.Garden{ID: "garden-1", Capacity: 500, BasePrice: 5000}, nil)
			},
			wantPrice: 5000,
		},
		{
			name: "unknown garden",
			req: dto.GardenQuoteRequest{
				GardenID: "missing",
				Date:     "2026-10-20",
				Guests:   100,
			},
			setupMock: func() {
				mockGardenRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(gardenModel.Garden{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.QuoteGarden(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantPrice, res.TotalPrice)
		})
	}
}
