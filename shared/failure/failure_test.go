package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"atithi/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: failure.NotFound("room not found"), want: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("dates taken"), want: http.StatusConflict},
		{name: "validation failed", err: failure.ValidationFailed([]string{"too short"}), want: http.StatusUnprocessableEntity},
		{name: "invalid transition", err: failure.InvalidTransition("cannot check in"), want: http.StatusUnprocessableEntity},
		{name: "bad request", err: failure.BadRequestFromString("bad"), want: http.StatusBadRequest},
		{name: "wrapped failure", err: fmt.Errorf("outer: %w", failure.NotFound("gone")), want: http.StatusNotFound},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestGetDetails(t *testing.T) {
	msgs := []string{"Minimum booking period is 2 days", "Minimum 7 days advance booking required"}

	err := failure.ValidationFailed(msgs)

	assert.Equal(t, msgs, failure.GetDetails(err))
	assert.Nil(t, failure.GetDetails(errors.New("plain")))
}
