package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atithi/internal/domains/booking/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name         string
		businessUnit string
		from         string
		to           string
		want         bool
	}{
		{"hotel pending to confirmed", model.UnitHotel, model.StatusPending, model.StatusConfirmed, true},
		{"hotel confirmed to checked_in", model.UnitHotel, model.StatusConfirmed, model.StatusCheckedIn, true},
		{"hotel checked_in to checked_out", model.UnitHotel, model.StatusCheckedIn, model.StatusCheckedOut, true},
		{"hotel checked_in to cancelled", model.UnitHotel, model.StatusCheckedIn, model.StatusCancelled, true},
		{"hotel pending to checked_in skips confirmation", model.UnitHotel, model.StatusPending, model.StatusCheckedIn, false},
		{"hotel checked_out is terminal", model.UnitHotel, model.StatusCheckedOut, model.StatusCancelled, false},
		{"hotel cancelled is terminal", model.UnitHotel, model.StatusCancelled, model.StatusConfirmed, false},
		{"garden pending to confirmed", model.UnitGarden, model.StatusPending, model.StatusConfirmed, true},
		{"garden confirmed to cancelled", model.UnitGarden, model.StatusConfirmed, model.StatusCancelled, true},
		{"garden has no check_in stage", model.UnitGarden, model.StatusConfirmed, model.StatusCheckedIn, false},
		{"unknown status", model.UnitHotel, "bogus", model.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.businessUnit, tt.from, tt.to))
		})
	}
}

func TestCanTransitionPayment(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to partial", model.PaymentPending, model.PaymentPartial, true},
		{"pending to paid", model.PaymentPending, model.PaymentPaid, true},
		{"partial to paid", model.PaymentPartial, model.PaymentPaid, true},
		{"paid to refunded", model.PaymentPaid, model.PaymentRefunded, true},
		{"partial to refunded", model.PaymentPartial, model.PaymentRefunded, true},
		{"paid back to partial", model.PaymentPaid, model.PaymentPartial, false},
		{"refunded is terminal", model.PaymentRefunded, model.PaymentPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransitionPayment(tt.from, tt.to))
		})
	}
}

func TestResourceStatusFor(t *testing.T) {
	tests := []struct {
		name         string
		businessUnit string
		status       string
		wantStatus   string
		wantOk       bool
	}{
		{"confirmed room is reserved", model.UnitHotel, model.StatusConfirmed, "reserved", true},
		{"checked_in room is occupied", model.UnitHotel, model.StatusCheckedIn, "occupied", true},
		{"checked_out frees the room", model.UnitHotel, model.StatusCheckedOut, "available", true},
		{"cancelled frees the room", model.UnitHotel, model.StatusCancelled, "available", true},
		{"pending has no side effect", model.UnitHotel, model.StatusPending, "", false},
		{"confirmed garden is booked", model.UnitGarden, model.StatusConfirmed, "booked", true},
		{"cancelled frees the garden", model.UnitGarden, model.StatusCancelled, "available", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ok := model.ResourceStatusFor(tt.businessUnit, tt.status)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}
