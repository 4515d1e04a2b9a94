package dto

import (
	"atithi/internal/domains/booking/model"
	"atithi/shared"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	gModel "atithi/shared/model"
	"atithi/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Type            string `json:"type"             validate:"required,oneof=HOTEL_ROOM MARRIAGE_GARDEN EVENT_HALL RESTAURANT_TABLE"`
	ResourceID      string `json:"resource_id"      validate:"required"`
	CustomerName    string `json:"customer_name"    validate:"required,max=100"`
	CustomerEmail   string `json:"customer_email"   validate:"omitempty,email,max=100"`
	CustomerPhone   string `json:"customer_phone"   validate:"omitempty,max=20"`
	CustomerAddress string `json:"customer_address" validate:"omitempty,max=255"`
	CheckIn         string `json:"check_in"         validate:"required"`
	CheckOut        string `json:"check_out"        validate:"omitempty"`
	Guests          int    `json:"guests"           validate:"required,min=1"`
	SpecialRequests string `json:"special_requests" validate:"omitempty"`
	BusinessUnit    string `json:"business_unit"    validate:"required,oneof=hotel garden"`
}

// ToModel builds a new pending booking. Single-day resources may omit
// check_out, in which case it equals check_in. Dates are parsed in the
// application timezone so the stored instants line up with the values the
// availability checks normalize with timezone.DayStart.
func (c *CreateBookingRequest) ToModel(user string, totalPrice float64) (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut := checkIn

	if c.CheckOut != "" {
		checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)
		if err != nil {
			return model.Booking{}, err
		}
	}

	return model.Booking{
		ID:              uuid.NewString(),
		Type:            c.Type,
		ResourceID:      c.ResourceID,
		CustomerName:    c.CustomerName,
		CustomerEmail:   c.CustomerEmail,
		CustomerPhone:   c.CustomerPhone,
		CustomerAddress: c.CustomerAddress,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          c.Guests,
		TotalPrice:      totalPrice,
		Status:          model.StatusPending,
		PaymentStatus:   model.PaymentPending,
		SpecialRequests: c.SpecialRequests,
		BusinessUnit:    c.BusinessUnit,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed checked_in checked_out cancelled"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending partial paid refunded"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	ResourceID      string  `json:"resource_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerAddress string  `json:"customer_address"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	Guests          int     `json:"guests"`
	TotalPrice      float64 `json:"total_price"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	SpecialRequests string  `json:"special_requests"`
	BusinessUnit    string  `json:"business_unit"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Type = model.Type
	r.ResourceID = model.ResourceID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.CustomerPhone = model.CustomerPhone
	r.CustomerAddress = model.CustomerAddress
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Guests = model.Guests
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.SpecialRequests = model.SpecialRequests
	r.BusinessUnit = model.BusinessUnit
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	ResourceID string `json:"resource_id"`
	Available  bool   `json:"available"`
}

type StatsResponse struct {
	TotalBookings     int      `json:"total_bookings"`
	ConfirmedBookings int      `json:"confirmed_bookings"`
	CancelledBookings int      `json:"cancelled_bookings"`
	TotalRevenue      float64  `json:"total_revenue"`
	OccupancyRate     *float64 `json:"occupancy_rate,omitempty"`
}
