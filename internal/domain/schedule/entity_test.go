//go:build unit

package schedule_test

import (
	"testing"

	"salon-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(b bool) *bool { return &b }

func TestIsBookable(t *testing.T) {
	cases := []struct {
		name        string
		slotEnabled bool
		dateOpen    *bool
		override    *bool
		want        bool
	}{
		{"all layers absent", true, nil, nil, true},
		{"slot disabled wins over everything", false, ptr(true), ptr(true), false},
		{"date closed", true, ptr(false), nil, false},
		{"date explicitly open", true, ptr(true), nil, true},
		{"override unavailable", true, nil, ptr(false), false},
		{"override available", true, nil, ptr(true), true},
		{"date closed beats override available", true, ptr(false), ptr(true), false},
		{"date open but override unavailable", true, ptr(true), ptr(false), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, schedule.IsBookable(c.slotEnabled, c.dateOpen, c.override))
		})
	}
}

func TestNewSlot(t *testing.T) {
	t.Run("label defaults to the time string", func(t *testing.T) {
		st, err := schedule.NewSlotTime("10:00")
		require.NoError(t, err)

		slot := schedule.NewSlot(st, "", 1)

		assert.Equal(t, "10:00", slot.Label())
		assert.True(t, slot.Enabled())
	})

	t.Run("explicit label is kept", func(t *testing.T) {
		st, err := schedule.NewSlotTime("11:30")
		require.NoError(t, err)

		slot := schedule.NewSlot(st, "午前の部", 2)

		assert.Equal(t, "午前の部", slot.Label())
	})
}
