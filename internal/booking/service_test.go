package booking_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/booking"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/observability"
)

type fakeEventStore struct {
	mu     sync.Mutex
	events map[uuid.UUID]*domain.Event
}

func newFakeEventStore(events ...domain.Event) *fakeEventStore {
	s := &fakeEventStore{events: map[uuid.UUID]*domain.Event{}}
	for i := range events {
		e := events[i]
		s.events[e.ID] = &e
	}
	return s
}

func (s *fakeEventStore) Get(_ context.Context, id uuid.UUID) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *fakeEventStore) ReserveSeats(_ context.Context, id uuid.UUID, n int) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if e.AvailableSeats < n {
		return nil, domain.ErrInsufficientSeats
	}
	e.AvailableSeats -= n
	cp := *e
	return &cp, nil
}

func (s *fakeEventStore) ReleaseSeats(_ context.Context, id uuid.UUID, n int) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e.AvailableSeats += n
	if e.AvailableSeats > e.Capacity {
		e.AvailableSeats = e.Capacity
	}
	cp := *e
	return &cp, nil
}

func (s *fakeEventStore) seats(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[id].AvailableSeats
}

func (s *fakeEventStore) drop(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.events, id)
}

type fakeBookingStore struct {
	mu         sync.Mutex
	bookings   map[uuid.UUID]domain.Booking
	failInsert bool
	failUpdate bool
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: map[uuid.UUID]domain.Booking{}}
}

func (s *fakeBookingStore) Get(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (s *fakeBookingStore) Insert(_ context.Context, b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failInsert {
		return errors.Wrap(domain.ErrStorageUnavailable, "insert failed")
	}
	s.bookings[b.ID] = b
	return nil
}

func (s *fakeBookingStore) Update(_ context.Context, b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failUpdate {
		return errors.Wrap(domain.ErrStorageUnavailable, "update failed")
	}
	if _, ok := s.bookings[b.ID]; !ok {
		return domain.ErrNotFound
	}
	s.bookings[b.ID] = b
	return nil
}

func (s *fakeBookingStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.bookings, id)
	return nil
}

type fakeVisitorStore struct {
	visitors map[uuid.UUID]domain.Visitor
}

func newFakeVisitorStore(visitors ...domain.Visitor) *fakeVisitorStore {
	s := &fakeVisitorStore{visitors: map[uuid.UUID]domain.Visitor{}}
	for _, v := range visitors {
		s.visitors[v.ID] = v
	}
	return s
}

func (s *fakeVisitorStore) Get(_ context.Context, id uuid.UUID) (*domain.Visitor, error) {
	v, ok := s.visitors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func testFixtures() (domain.Visitor, domain.Event) {
	visitor := domain.NewVisitor("Aroha", "Ngata", "aroha@example.com", "0211234567", "", "Tuakau", "NZ", []string{"Walking"})
	event := domain.NewEvent("Harbour Walk", "Guided walk", time.Now().AddDate(0, 0, 7), "09:00", "Wharf Gate", "Guided", "", 50, decimal.RequireFromString("25.00"))
	return visitor, event
}

func newTestService(events *fakeEventStore, bookings *fakeBookingStore, visitors *fakeVisitorStore) *booking.Service {
	return booking.NewService(events, bookings, visitors, nil, observability.NewLogger())
}

func TestCreate_ReservesSeatsAndPrices(t *testing.T) {
	visitor, event := testFixtures()
	events := newFakeEventStore(event)
	bookings := newFakeBookingStore()
	svc := newTestService(events, bookings, newFakeVisitorStore(visitor))

	b, err := svc.Create(context.Background(), visitor.ID, event.ID, 10, "")
	require.NoError(t, err)
	require.Equal(t, 40, events.seats(event.ID))
	require.True(t, b.TotalAmount.Equal(decimal.RequireFromString("250.00")), "got %s", b.TotalAmount)
	require.Equal(t, domain.StatusConfirmed, b.Status)
	require.Equal(t, "Aroha Ngata", b.VisitorName)
}

func TestCreate_InsufficientSeatsLeavesCounterUnchanged(t *testing.T) {
	visitor, event := testFixtures()
	event.AvailableSeats = 5
	events := newFakeEventStore(event)
	svc := newTestService(events, newFakeBookingStore(), newFakeVisitorStore(visitor))

	_, err := svc.Create(context.Background(), visitor.ID, event.ID, 6, "")
	require.ErrorIs(t, err, domain.ErrInsufficientSeats)
	require.Equal(t, 5, events.seats(event.ID))
}

func TestCreate_RejectsNonPositiveTicketCount(t *testing.T) {
	visitor, event := testFixtures()
	svc := newTestService(newFakeEventStore(event), newFakeBookingStore(), newFakeVisitorStore(visitor))

	_, err := svc.Create(context.Background(), visitor.ID, event.ID, 0, "")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreate_UnknownVisitorOrEvent(t *testing.T) {
	visitor, event := testFixtures()
	events := newFakeEventStore(event)
	svc := newTestService(events, newFakeBookingStore(), newFakeVisitorStore(visitor))

	_, err := svc.Create(context.Background(), uuid.New(), event.ID, 1, "")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Create(context.Background(), visitor.ID, uuid.New(), 1, "")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Equal(t, 50, events.seats(event.ID))
}

func TestCreate_InsertFailureReleasesSeats(t *testing.T) {
	visitor, event := testFixtures()
	events := newFakeEventStore(event)
	bookings := newFakeBookingStore()
	bookings.failInsert = true
	svc := newTestService(events, bookings, newFakeVisitorStore(visitor))

	_, err := svc.Create(context.Background(), visitor.ID, event.ID, 10, "")
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
	require.Equal(t, 50, events.seats(event.ID))
}

func TestUpdate_SeatDeltaSymmetric(t *testing.T) {
	visitor, event := testFixtures()
	events := newFakeEventStore(event)
	bookings := newFakeBookingStore()
	svc := newTestService(events, bookings, newFakeVisitorStore(visitor))

	b, err := svc.Create(context.Background(), visitor.ID, event.ID, 10, "")
	require.NoError(t, err)
	require.Equal(t, 40, events.seats(event.ID))

	up, err := svc.Update(context.Background(), b.ID, 15, "")
	require.NoError(t, err)
	require.Equal(t, 35, events.seats(event.ID))
	require.True(t, up.TotalAmount.Equal(decimal.RequireFromString("375.00")), "got %s", up.TotalAmount)

	down, err := svc.Update(context.Background(), b.ID, 5, domain.StatusPending)
	require.NoError(t, err)
	require.Equal(t, 45, events.seats(event.ID))
	require.Equal(t, domain.StatusPending, down.Status)
	require.True(t, down.TotalAmount.Equal(decimal.RequireFromString("125.00")))
}

func TestUpdate_RejectedIncreaseLeavesStateUnchanged(t *testing.T) {
	visitor, event := testFixtures()
	event.Capacity = 12
	event.AvailableSeats = 12
	events := newFakeEventStore(event)
	bookings := newFakeBookingStore()
	svc := newTestService(events, bookings, newFakeVisitorStore(visitor))

	b, err := svc.Create(context.Background(), visitor.ID, event.ID, 10, "")
	require.NoError(t, err)
	require.Equal(t, 2, events.seats(event.ID))

	_, err = svc.Update(context.Background(), b.ID, 13, "")
	require.ErrorIs(t, err, domain.ErrInsufficientSeats)
	require.Equal(t, 2, events.seats(event.ID))

	got, err := bookings.Get(context.Background(), b.ID)
	require.NoError(t, err)
	require.Equal(t, 10, got.TicketCount)
}

func TestUpdate_WriteFailureCompensatesSeats(t *testing.T) {
	visitor, event := testFixtures()
	events := newFakeEventStore(event)
	bookings := newFakeBookingStore()
	svc := newTestService(events, bookings, newFakeVisitorStore(visitor))

	b, err := svc.Create(context.Background(), visitor.ID, event.ID, 10, "")
	require.NoError(t, err)

	bookings.failUpdate = true
	_, err = svc.Update(context.Background(), b.ID, 15, "")
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
	require.Equal(t, 40, events.seats(event.ID))
}

func TestDelete_ReleasesSeatsExactlyOnce(t *testing.T) {
	visitor, event := testFixtures()
	events := newFakeEventStore(event)
	bookings := newFakeBookingStore()
	svc := newTestService(events, bookings, newFakeVisitorStore(visitor))

	b, err := svc.Create(context.Background(), visitor.ID, event.ID, 10, "")
	require.NoError(t, err)
	require.Equal(t, 40, events.seats(event.ID))

	require.NoError(t, svc.Delete(context.Background(), b.ID))
	require.Equal(t, 50, events.seats(event.ID))

	err = svc.Delete(context.Background(), b.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Equal(t, 50, events.seats(event.ID))
}

func TestDelete_EventGoneStillRemovesBooking(t *testing.T) {
	visitor, event := testFixtures()
	events := newFakeEventStore(event)
	bookings := newFakeBookingStore()
	svc := newTestService(events, bookings, newFakeVisitorStore(visitor))

	b, err := svc.Create(context.Background(), visitor.ID, event.ID, 10, "")
	require.NoError(t, err)

	events.drop(event.ID)
	require.NoError(t, svc.Delete(context.Background(), b.ID))

	_, err = bookings.Get(context.Background(), b.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ConcurrentOverlappingRequests(t *testing.T) {
	visitor, event := testFixtures()
	event.Capacity = 10
	event.AvailableSeats = 10
	events := newFakeEventStore(event)
	svc := newTestService(events, newFakeBookingStore(), newFakeVisitorStore(visitor))

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), visitor.ID, event.ID, 6, "")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, insufficient int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInsufficientSeats):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, 1, insufficient)
	require.Equal(t, 4, events.seats(event.ID))
}
