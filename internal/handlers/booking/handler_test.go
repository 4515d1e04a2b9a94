package booking

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"atithi/shared/failure"
)

func TestBookingFilter(t *testing.T) {
	t.Run("customer matches name, email, and phone", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/v1/bookings?customer=asha%40example.com", nil)

		filterGroup, err := bookingFilter(r)
		assert.NoError(t, err)

		where, args := filterGroup.GetWhereClause()

		assert.Contains(t, where, "bookings.customer_name = :customer_name")
		assert.Contains(t, where, "bookings.customer_email = :customer_email")
		assert.Contains(t, where, "bookings.customer_phone = :customer_phone")
		assert.Contains(t, where, " OR ")
		assert.Equal(t, "asha@example.com", args["customer_name"])
		assert.Equal(t, "asha@example.com", args["customer_email"])
		assert.Equal(t, "asha@example.com", args["customer_phone"])
	})

	t.Run("equality and date filters combined", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/v1/bookings?status=pending&business_unit=hotel&date_from=2027-05-01", nil)

		filterGroup, err := bookingFilter(r)
		assert.NoError(t, err)

		where, args := filterGroup.GetWhereClause()

		assert.Contains(t, where, "bookings.status = :status")
		assert.Contains(t, where, "bookings.business_unit = :business_unit")
		assert.Contains(t, where, "bookings.check_in >= :date_from")
		assert.Equal(t, "pending", args["status"])
	})

	t.Run("invalid date_from rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/v1/bookings?date_from=05-01-2027", nil)

		_, err := bookingFilter(r)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
