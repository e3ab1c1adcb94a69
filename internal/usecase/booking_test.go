//go:build unit

package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase"
	"salon-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo enforces (date, slot) uniqueness under a mutex, the same
// guarantee the real table provides with its UNIQUE constraint.
type fakeBookingRepo struct {
	mu     sync.Mutex
	nextID int64
	taken  map[string]int64
	rows   map[int64]*usecase.BookingView
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		taken: make(map[string]int64),
		rows:  make(map[int64]*usecase.BookingView),
	}
}

func slotKey(d schedule.Date, t schedule.SlotTime) string {
	return d.String() + " " + t.String()
}

func (f *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := slotKey(b.Date(), b.SlotTime())
	if _, exists := f.taken[key]; exists {
		return 0, infra.WrapRepoErr("duplicate booking", nil, infra.KindDuplicateKey)
	}

	f.nextID++
	f.taken[key] = f.nextID
	f.rows[f.nextID] = &usecase.BookingView{
		ID:           f.nextID,
		CustomerName: b.CustomerName(),
		PhoneNumber:  b.PhoneNumber(),
		ServiceName:  b.ServiceName(),
		Date:         b.Date(),
		SlotTime:     b.SlotTime(),
		Notes:        b.Notes(),
	}
	return f.nextID, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, id int64, b *booking.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	old, ok := f.rows[id]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	key := slotKey(b.Date(), b.SlotTime())
	if holder, exists := f.taken[key]; exists && holder != id {
		return infra.WrapRepoErr("duplicate booking", nil, infra.KindDuplicateKey)
	}

	delete(f.taken, slotKey(old.Date, old.SlotTime))
	f.taken[key] = id
	f.rows[id] = &usecase.BookingView{
		ID:           id,
		CustomerName: b.CustomerName(),
		PhoneNumber:  b.PhoneNumber(),
		ServiceName:  b.ServiceName(),
		Date:         b.Date(),
		SlotTime:     b.SlotTime(),
		Notes:        b.Notes(),
	}
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	row, ok := f.rows[id]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	delete(f.taken, slotKey(row.Date, row.SlotTime))
	delete(f.rows, id)
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id int64) (*usecase.BookingView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	row, ok := f.rows[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return row, nil
}

func (f *fakeBookingRepo) ListBookedSlots(_ context.Context, from, to schedule.Date) ([]usecase.BookedSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []usecase.BookedSlot
	for _, row := range f.rows {
		if row.Date.Before(from) || to.Before(row.Date) {
			continue
		}
		out = append(out, usecase.BookedSlot{Date: row.Date, SlotTime: row.SlotTime})
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAll(_ context.Context) ([]*usecase.BookingView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*usecase.BookingView, 0, len(f.rows))
	for _, row := range f.rows {
		out = append(out, row)
	}
	return out, nil
}

type fakeAvailability struct {
	bookable bool
	err      error
}

func (f *fakeAvailability) IsSlotBookable(context.Context, schedule.Date, schedule.SlotTime) (bool, error) {
	return f.bookable, f.err
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []usecase.BookingView
}

func (n *recordingNotifier) BookingCreated(v usecase.BookingView) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, v)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func newBookingUseCase(repo *fakeBookingRepo, avail *fakeAvailability, notifier usecase.BookingNotifier) (usecase.BookingCommands, usecase.BookingQueries) {
	clk := clock.NewMockClock(time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC))
	return usecase.NewBookingUseCase(repo, avail, notifier, clk)
}

func TestReserve(t *testing.T) {
	t.Run("success notifies once", func(t *testing.T) {
		repo := newFakeBookingRepo()
		notifier := &recordingNotifier{}
		commands, _ := newBookingUseCase(repo, &fakeAvailability{bookable: true}, notifier)

		view, err := commands.Reserve(context.Background(), builder.NewBookingBuilder().BuildInput())
		require.NoError(t, err)
		require.NotNil(t, view)

		assert.NotZero(t, view.ID)
		assert.Equal(t, 1, notifier.count())
	})

	t.Run("validation failure", func(t *testing.T) {
		repo := newFakeBookingRepo()
		notifier := &recordingNotifier{}
		commands, _ := newBookingUseCase(repo, &fakeAvailability{bookable: true}, notifier)

		in := builder.NewBookingBuilder().BuildInput()
		in.CustomerName = ""

		_, err := commands.Reserve(context.Background(), in)
		require.ErrorIs(t, err, errs.ErrBookingValidation)
		assert.Equal(t, 0, notifier.count())
	})

	t.Run("unavailable slot is rejected before insert", func(t *testing.T) {
		repo := newFakeBookingRepo()
		notifier := &recordingNotifier{}
		commands, _ := newBookingUseCase(repo, &fakeAvailability{bookable: false}, notifier)

		_, err := commands.Reserve(context.Background(), builder.NewBookingBuilder().BuildInput())
		require.ErrorIs(t, err, errs.ErrSlotUnavailable)
		assert.Equal(t, 0, notifier.count())
	})

	t.Run("taken slot maps to ErrAlreadyBooked", func(t *testing.T) {
		repo := newFakeBookingRepo()
		notifier := &recordingNotifier{}
		commands, _ := newBookingUseCase(repo, &fakeAvailability{bookable: true}, notifier)

		_, err := commands.Reserve(context.Background(), builder.NewBookingBuilder().BuildInput())
		require.NoError(t, err)

		in := builder.NewBookingBuilder().BuildInput()
		in.CustomerName = "佐藤 次郎"
		_, err = commands.Reserve(context.Background(), in)
		require.ErrorIs(t, err, errs.ErrAlreadyBooked)
		assert.Equal(t, 1, notifier.count())
	})

	t.Run("concurrent reservations produce exactly one winner", func(t *testing.T) {
		repo := newFakeBookingRepo()
		notifier := &recordingNotifier{}
		commands, _ := newBookingUseCase(repo, &fakeAvailability{bookable: true}, notifier)

		const n = 32
		var wg sync.WaitGroup
		errCh := make(chan error, n)

		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := commands.Reserve(context.Background(), builder.NewBookingBuilder().BuildInput())
				errCh <- err
			}()
		}
		wg.Wait()
		close(errCh)

		won, lost := 0, 0
		for err := range errCh {
			switch {
			case err == nil:
				won++
			default:
				require.ErrorIs(t, err, errs.ErrAlreadyBooked)
				lost++
			}
		}

		assert.Equal(t, 1, won)
		assert.Equal(t, n-1, lost)
		assert.Equal(t, 1, notifier.count())
	})
}

func TestAdminBookingCommands(t *testing.T) {
	t.Run("CreateBooking skips the availability gate", func(t *testing.T) {
		repo := newFakeBookingRepo()
		commands, _ := newBookingUseCase(repo, &fakeAvailability{bookable: false}, &recordingNotifier{})

		view, err := commands.CreateBooking(context.Background(), builder.NewBookingBuilder().BuildInput())
		require.NoError(t, err)
		assert.NotZero(t, view.ID)
	})

	t.Run("CreateBooking still honors uniqueness", func(t *testing.T) {
		repo := newFakeBookingRepo()
		commands, _ := newBookingUseCase(repo, &fakeAvailability{bookable: false}, &recordingNotifier{})

		_, err := commands.CreateBooking(context.Background(), builder.NewBookingBuilder().BuildInput())
		require.NoError(t, err)

		_, err = commands.CreateBooking(context.Background(), builder.NewBookingBuilder().BuildInput())
		require.ErrorIs(t, err, errs.ErrAlreadyBooked)
	})

	t.Run("UpdateBooking moves the slot", func(t *testing.T) {
		repo := newFakeBookingRepo()
		commands, queries := newBookingUseCase(repo, &fakeAvailability{bookable: true}, &recordingNotifier{})

		view, err := commands.CreateBooking(context.Background(), builder.NewBookingBuilder().BuildInput())
		require.NoError(t, err)

		in := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.SlotTime = "13:00"
		}).BuildInput()
		require.NoError(t, commands.UpdateBooking(context.Background(), view.ID, in))

		got, err := queries.GetBooking(context.Background(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, "13:00", got.SlotTime.String())
	})

	t.Run("UpdateBooking onto a taken slot conflicts", func(t *testing.T) {
		repo := newFakeBookingRepo()
		commands, _ := newBookingUseCase(repo, &fakeAvailability{bookable: true}, &recordingNotifier{})

		first, err := commands.CreateBooking(context.Background(), builder.NewBookingBuilder().BuildInput())
		require.NoError(t, err)

		secondIn := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.SlotTime = "13:00"
		}).BuildInput()
		second, err := commands.CreateBooking(context.Background(), secondIn)
		require.NoError(t, err)
		_ = first

		moveIn := builder.NewBookingBuilder().BuildInput() // back onto first's slot
		err = commands.UpdateBooking(context.Background(), second.ID, moveIn)
		require.ErrorIs(t, err, errs.ErrAlreadyBooked)
	})

	t.Run("operations on a missing booking", func(t *testing.T) {
		repo := newFakeBookingRepo()
		commands, queries := newBookingUseCase(repo, &fakeAvailability{bookable: true}, &recordingNotifier{})

		_, err := queries.GetBooking(context.Background(), 999)
		require.ErrorIs(t, err, errs.ErrBookingNotFound)

		err = commands.UpdateBooking(context.Background(), 999, builder.NewBookingBuilder().BuildInput())
		require.ErrorIs(t, err, errs.ErrBookingNotFound)

		err = commands.DeleteBooking(context.Background(), 999)
		require.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("delete frees the slot", func(t *testing.T) {
		repo := newFakeBookingRepo()
		commands, _ := newBookingUseCase(repo, &fakeAvailability{bookable: true}, &recordingNotifier{})

		view, err := commands.CreateBooking(context.Background(), builder.NewBookingBuilder().BuildInput())
		require.NoError(t, err)

		require.NoError(t, commands.DeleteBooking(context.Background(), view.ID))

		_, err = commands.CreateBooking(context.Background(), builder.NewBookingBuilder().BuildInput())
		require.NoError(t, err)
	})
}
