package model

import (
	"time"

	"atithi/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldType            = "type"
	FieldResourceID      = "resource_id"
	FieldCustomerName    = "customer_name"
	FieldCustomerEmail   = "customer_email"
	FieldCustomerPhone   = "customer_phone"
	FieldCustomerAddress = "customer_address"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldGuests          = "guests"
	FieldTotalPrice      = "total_price"
	FieldStatus          = "status"
	FieldPaymentStatus   = "payment_status"
	FieldSpecialRequests = "special_requests"
	FieldBusinessUnit    = "business_unit"
)

const (
	TypeHotelRoom       = "HOTEL_ROOM"
	TypeMarriageGarden  = "MARRIAGE_GARDEN"
	TypeEventHall       = "EVENT_HALL"
	TypeRestaurantTable = "RESTAURANT_TABLE"
)

const (
	UnitHotel  = "hotel"
	UnitGarden = "garden"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

const (
	PaymentPending  = "pending"
	PaymentPartial  = "partial"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// ActiveStatuses are the statuses that hold a resource: only these count
// toward the overlap check.
var ActiveStatuses = []string{StatusPending, StatusConfirmed, StatusCheckedIn}

type Booking struct {
	ID              string    `db:"id"`
	Type            string    `db:"type"`
	ResourceID      string    `db:"resource_id"`
	CustomerName    string    `db:"customer_name"`
	CustomerEmail   string    `db:"customer_email"`
	CustomerPhone   string    `db:"customer_phone"`
	CustomerAddress string    `db:"customer_address"`
	CheckIn         time.Time `db:"check_in"`
	CheckOut        time.Time `db:"check_out"`
	Guests          int       `db:"guests"`
	TotalPrice      float64   `db:"total_price"`
	Status          string    `db:"status"`
	PaymentStatus   string    `db:"payment_status"`
	SpecialRequests string    `db:"special_requests"`
	BusinessUnit    string    `db:"business_unit"`
	model.Metadata
}
