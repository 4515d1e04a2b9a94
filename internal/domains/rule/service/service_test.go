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
	ruleMocks "atithi/internal/domains/rule/mocks"
	"atithi/internal/domains/rule/model"
	"atithi/internal/domains/rule/model/dto"
	"atithi/internal/domains/rule/service"
	cacheMocks "atithi/shared/cache/mocks"
	"atithi/shared/constant"
	"atithi/shared/timezone"
)

func hotelRules() []model.Rule {
	return []model.Rule{
		{ID: "rule-1", Type: "HOTEL_ROOM", BusinessUnit: "hotel", Rule: model.KindMinDays, Value: 1},
		{ID: "rule-2", Type: "HOTEL_ROOM", BusinessUnit: "hotel", Rule: model.KindMaxDays, Value: 30},
	}
}

func gardenRules() []model.Rule {
	return []model.Rule{
		{ID: "rule-3", Type: "MARRIAGE_GARDEN", BusinessUnit: "garden", Rule: model.KindAdvanceBooking, Value: 7},
	}
}

func TestRuleService_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ruleMocks.NewMockRule(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	day := func(offset int) string {
		return timezone.Now().AddDate(0, 0, offset).Format(constant.DateOnlyFormat)
	}

	tests := []struct {
		name       string
		req        dto.ValidateBookingRequest
		setupMock  func()
		wantErr    bool
		wantValid  bool
		wantErrors []string
	}{
		{
			name: "valid hotel booking",
			req: dto.ValidateBookingRequest{
				Type:         "HOTEL_ROOM",
				BusinessUnit: "hotel",
				CheckIn:      day(10),
				CheckOut:     day(12),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(hotelRules(), nil)
			},
			wantValid:  true,
			wantErrors: []string{},
		},
		{
			name: "stay above maximum",
			req: dto.ValidateBookingRequest{
				Type:         "HOTEL_ROOM",
				BusinessUnit: "hotel",
				CheckIn:      day(10),
				CheckOut:     day(45),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(hotelRules(), nil)
			},
			wantValid:  false,
			wantErrors: []string{"Maximum booking period is 30 days"},
		},
		{
			name: "garden too close to the date",
			req: dto.ValidateBookingRequest{
				Type:         "MARRIAGE_GARDEN",
				BusinessUnit: "garden",
				CheckIn:      day(2),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(gardenRules(), nil)
			},
			wantValid:  false,
			wantErrors: []string{"Minimum 7 days advance booking required"},
		},
		{
			name: "min and max both violated report together",
			req: dto.ValidateBookingRequest{
				Type:         "HOTEL_ROOM",
				BusinessUnit: "hotel",
				CheckIn:      day(10),
				CheckOut:     day(45),
			},
			setupMock: func() {
				rules := []model.Rule{
					{ID: "rule-1", Type: "HOTEL_ROOM", BusinessUnit: "hotel", Rule: model.KindMinDays, Value: 40},
					{ID: "rule-2", Type: "HOTEL_ROOM", BusinessUnit: "hotel", Rule: model.KindMaxDays, Value: 30},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rules, nil)
			},
			wantValid: false,
			wantErrors: []string{
				"Minimum booking period is 40 days",
				"Maximum booking period is 30 days",
			},
		},
		{
			name: "missing check_out skips stay length rules",
			req: dto.ValidateBookingRequest{
				Type:         "HOTEL_ROOM",
				BusinessUnit: "hotel",
				CheckIn:      day(10),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(hotelRules(), nil)
			},
			wantValid:  true,
			wantErrors: []string{},
		},
		{
			name: "invalid check_in date",
			req: dto.ValidateBookingRequest{
				Type:         "HOTEL_ROOM",
				BusinessUnit: "hotel",
				CheckIn:      "not-a-date",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.ValidateBookingRequest{
				Type:         "HOTEL_ROOM",
				BusinessUnit: "hotel",
				CheckIn:      day(10),
				CheckOut:     day(12),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Validate(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantValid, res.Valid)
			assert.Equal(t, tt.wantErrors, res.Errors)
		})
	}
}

func TestRuleService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ruleMocks.NewMockRule(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	t.Run("lists rules for a unit", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(hotelRules(), nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background(), "HOTEL_ROOM", "hotel")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, res.Rules, 2)
	})
}
