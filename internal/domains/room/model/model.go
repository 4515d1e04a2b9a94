package model

import (
	"atithi/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldNumber      = "number"
	FieldType        = "type"
	FieldCategory    = "category"
	FieldCapacity    = "capacity"
	FieldBasePrice   = "base_price"
	FieldAmenities   = "amenities"
	FieldStatus      = "status"
	FieldFloor       = "floor"
	FieldDescription = "description"
)

const (
	TypeSingle       = "single"
	TypeDouble       = "double"
	TypeSuite        = "suite"
	TypeDeluxe       = "deluxe"
	TypePresidential = "presidential"
)

const (
	CategoryStandard = "standard"
	CategoryPremium  = "premium"
	CategoryLuxury   = "luxury"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
	StatusReserved    = "reserved"
)

type Room struct {
	ID          string         `db:"id"`
	Number      string         `db:"number"`
	Type        string         `db:"type"`
	Category    string         `db:"category"`
	Capacity    int            `db:"capacity"`
	BasePrice   float64        `db:"base_price"`
	Amenities   pq.StringArray `db:"amenities"`
	Status      string         `db:"status"`
	Floor       int            `db:"floor"`
	Description string         `db:"description"`
	model.Metadata
}
