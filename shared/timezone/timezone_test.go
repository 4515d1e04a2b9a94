package timezone_test

import (
	"testing"
	"time"

	"atithi/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestDayStart(t *testing.T) {
	loc := timezone.GetLocation()

	late := time.Date(2026, 3, 14, 23, 45, 12, 0, loc)
	start := timezone.DayStart(late)

	assert.Equal(t, 2026, start.Year())
	assert.Equal(t, time.March, start.Month())
	assert.Equal(t, 14, start.Day())
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
}

func TestSameDate(t *testing.T) {
	loc := timezone.GetLocation()

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{
			name: "same day different hours",
			a:    time.Date(2026, 1, 10, 9, 0, 0, 0, loc),
			b:    time.Date(2026, 1, 10, 22, 0, 0, 0, loc),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2026, 1, 10, 23, 59, 0, 0, loc),
			b:    time.Date(2026, 1, 11, 0, 1, 0, 0, loc),
			want: false,
		},
		{
			name: "symmetric",
			a:    time.Date(2026, 1, 11, 0, 1, 0, 0, loc),
			b:    time.Date(2026, 1, 10, 23, 59, 0, 0, loc),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timezone.SameDate(tt.a, tt.b))
		})
	}
}
