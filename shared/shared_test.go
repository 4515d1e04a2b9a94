package shared_test

import (
	"testing"

	"atithi/shared"
	gDto "atithi/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "exact division", total: 20, limit: 10, want: 2},
		{name: "remainder rounds up", total: 21, limit: 10, want: 3},
		{name: "zero limit", total: 5, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := shared.FilterByID("booking-1", "id", "bookings")

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	assert.Equal(t, first, second)

	other := shared.BuildCacheKeyWithQuery("booking:gets", params, shared.FilterByID("booking-2", "id", "bookings"))
	assert.NotEqual(t, first, other)
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("not-a-bool"))

	val := shared.ConvertStringToBool("true")
	if assert.NotNil(t, val) {
		assert.True(t, *val)
	}
}
