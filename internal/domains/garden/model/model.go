package model

import (
	"atithi/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "gardens"
	EntityName = "garden"

	FieldID          = "id"
	FieldName        = "name"
	FieldCapacity    = "capacity"
	FieldBasePrice   = "base_price"
	FieldArea        = "area"
	FieldAmenities   = "amenities"
	FieldStatus      = "status"
	FieldFeatures    = "features"
	FieldDescription = "description"
)

const (
	StatusAvailable   = "available"
	StatusBooked      = "booked"
	StatusMaintenance = "maintenance"
)

type Garden struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Capacity    int            `db:"capacity"`
	BasePrice   float64        `db:"base_price"`
	Area        float64        `db:"area"`
	Amenities   pq.StringArray `db:"amenities"`
	Status      string         `db:"status"`
	Features    pq.StringArray `db:"features"`
	Description string         `db:"description"`
	model.Metadata
}
