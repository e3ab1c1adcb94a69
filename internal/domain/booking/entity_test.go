//go:build unit

package booking_test

import (
	"testing"

	"salon-booking/internal/domain/booking"
	"salon-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "山田 花子", actual.CustomerName())
		assert.Equal(t, "090-1234-5678", actual.PhoneNumber())
		assert.Equal(t, "カット", actual.ServiceName())
		assert.Equal(t, "10:00", actual.SlotTime().String())
		assert.False(t, actual.Date().IsZero())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty customer name",
				mutate: func(b *builder.BookingBuilder) { b.CustomerName = "" },
				errIs:  booking.ErrEmptyCustomerName,
			},
			{
				name:   "whitespace only customer name",
				mutate: func(b *builder.BookingBuilder) { b.CustomerName = "   " },
				errIs:  booking.ErrEmptyCustomerName,
			},
			{
				name:   "empty phone number",
				mutate: func(b *builder.BookingBuilder) { b.PhoneNumber = "" },
				errIs:  booking.ErrEmptyPhoneNumber,
			},
			{
				name:   "empty service name",
				mutate: func(b *builder.BookingBuilder) { b.ServiceName = "" },
				errIs:  booking.ErrEmptyServiceName,
			},
			{
				name:   "empty notes is allowed",
				mutate: func(b *builder.BookingBuilder) { b.Notes = "" },
			},
		})
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.CustomerName = "  山田 花子  "
			b.Notes = "  メモ  "
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "山田 花子", actual.CustomerName())
		assert.Equal(t, "メモ", actual.Notes())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
