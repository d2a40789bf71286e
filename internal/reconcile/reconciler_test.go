package reconcile_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/observability"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/reconcile"
)

type fakeStore struct {
	events   map[uuid.UUID]*domain.Event
	bookings map[uuid.UUID][]domain.Booking
}

func (s *fakeStore) List(context.Context) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range s.events {
		out = append(out, *e)
	}
	return out, nil
}

func (s *fakeStore) SetAvailableSeats(_ context.Context, id uuid.UUID, seats int) error {
	e, ok := s.events[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.AvailableSeats = seats
	return nil
}

func (s *fakeStore) ListByEvent(_ context.Context, eventID uuid.UUID) ([]domain.Booking, error) {
	return s.bookings[eventID], nil
}

func driftedStore() (*fakeStore, uuid.UUID) {
	id := uuid.New()
	return &fakeStore{
		events: map[uuid.UUID]*domain.Event{
			id: {ID: id, Capacity: 50, AvailableSeats: 45},
		},
		bookings: map[uuid.UUID][]domain.Booking{
			id: {
				{EventID: id, TicketCount: 10, Status: domain.StatusConfirmed},
				{EventID: id, TicketCount: 5, Status: domain.StatusCancelled},
			},
		},
	}, id
}

func TestReconcileOnce_ReportsWithoutRepair(t *testing.T) {
	store, id := driftedStore()
	r := reconcile.NewReconciler(store, store, false, observability.NewLogger())

	require.NoError(t, r.ReconcileOnce(context.Background()))
	require.Equal(t, 45, store.events[id].AvailableSeats)
}

func TestReconcileOnce_RepairsDrift(t *testing.T) {
	store, id := driftedStore()
	r := reconcile.NewReconciler(store, store, true, observability.NewLogger())

	require.NoError(t, r.ReconcileOnce(context.Background()))
	// 50 capacity minus 10 confirmed tickets; the cancelled booking holds none.
	require.Equal(t, 40, store.events[id].AvailableSeats)
}

func TestReconcileOnce_NoDriftNoWrite(t *testing.T) {
	id := uuid.New()
	store := &fakeStore{
		events: map[uuid.UUID]*domain.Event{
			id: {ID: id, Capacity: 50, AvailableSeats: 40},
		},
		bookings: map[uuid.UUID][]domain.Booking{
			id: {{EventID: id, TicketCount: 10, Status: domain.StatusConfirmed}},
		},
	}
	r := reconcile.NewReconciler(store, store, true, observability.NewLogger())

	require.NoError(t, r.ReconcileOnce(context.Background()))
	require.Equal(t, 40, store.events[id].AvailableSeats)
}
