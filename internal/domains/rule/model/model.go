package model

import (
	"atithi/shared/model"
)

const (
	TableName  = "booking_rules"
	EntityName = "rule"

	FieldID           = "id"
	FieldType         = "type"
	FieldBusinessUnit = "business_unit"
	FieldRule         = "rule"
	FieldValue        = "value"
	FieldDescription  = "description"
)

const (
	KindMinDays        = "min_days"
	KindMaxDays        = "max_days"
	KindAdvanceBooking = "advance_booking"
	KindCancellation   = "cancellation"
	KindPayment        = "payment"
)

type Rule struct {
	ID           string `db:"id"`
	Type         string `db:"type"`
	BusinessUnit string `db:"business_unit"`
	Rule         string `db:"rule"`
	Value        int    `db:"value"`
	Description  string `db:"description"`
	model.Metadata
}
