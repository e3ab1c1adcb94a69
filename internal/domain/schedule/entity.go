package schedule

// Slot is one bookable time-of-day in the global catalog. Deleting a slot
// does not touch existing bookings; they keep their denormalized time value.
type Slot struct {
	id           int64
	time         SlotTime
	label        string
	displayOrder int
	enabled      bool
}

// NewSlot defaults an empty label to the time string.
func NewSlot(t SlotTime, label string, displayOrder int) *Slot {
	if label == "" {
		label = t.String()
	}
	return &Slot{
		time:         t,
		label:        label,
		displayOrder: displayOrder,
		enabled:      true,
	}
}

func ReconstructSlot(id int64, t SlotTime, label string, displayOrder int, enabled bool) *Slot {
	return &Slot{
		id:           id,
		time:         t,
		label:        label,
		displayOrder: displayOrder,
		enabled:      enabled,
	}
}

func (s *Slot) ID() int64         { return s.id }
func (s *Slot) Time() SlotTime    { return s.time }
func (s *Slot) Label() string     { return s.label }
func (s *Slot) DisplayOrder() int { return s.displayOrder }
func (s *Slot) Enabled() bool     { return s.enabled }

// IsBookable applies the availability layering for one (date, slot) pair:
// the slot's global flag, the per-date open flag and the per-date-per-slot
// override. A nil flag means no record exists, which defaults to open /
// available.
func IsBookable(slotEnabled bool, dateOpen *bool, overrideAvailable *bool) bool {
	if !slotEnabled {
		return false
	}
	if dateOpen != nil && !*dateOpen {
		return false
	}
	if overrideAvailable != nil && !*overrideAvailable {
		return false
	}
	return true
}
