// Package reconcile audits the seat ledger: for every event the stored
// availableSeats is compared against capacity minus the tickets held by
// non-cancelled bookings. Drift is logged and exported; repair is opt-in
// because a cancelled-but-kept booking legitimately still holds its seats
// until it is deleted.
package reconcile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/observability"
)

type EventStore interface {
	List(ctx context.Context) ([]domain.Event, error)
	SetAvailableSeats(ctx context.Context, id uuid.UUID, seats int) error
}

type BookingStore interface {
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Booking, error)
}

type Reconciler struct {
	events   EventStore
	bookings BookingStore
	repair   bool
	logger   observability.Logger
}

func NewReconciler(events EventStore, bookings BookingStore, repair bool, logger observability.Logger) *Reconciler {
	return &Reconciler{events: events, bookings: bookings, repair: repair, logger: logger}
}

func (r *Reconciler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.reconcileWithRetry(ctx); err != nil {
				r.logger.Error("reconciliation pass failed after retries", err)
			}
		}
	}
}

func (r *Reconciler) reconcileWithRetry(ctx context.Context) error {
	maxRetries := 3
	var err error
	for i := 0; i < maxRetries; i++ {
		if err = r.ReconcileOnce(ctx); err == nil {
			return nil
		}
		backoff := time.Duration(1<<i) * time.Second
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return err
}

func (r *Reconciler) ReconcileOnce(ctx context.Context) error {
	events, err := r.events.List(ctx)
	if err != nil {
		return err
	}

	for _, event := range events {
		bookings, err := r.bookings.ListByEvent(ctx, event.ID)
		if err != nil {
			return err
		}

		held := 0
		for _, b := range bookings {
			if b.Status != domain.StatusCancelled {
				held += b.TicketCount
			}
		}

		expected := event.Capacity - held
		if expected < 0 {
			expected = 0
		}

		drift := event.AvailableSeats - expected
		observability.SeatDrift.WithLabelValues(event.ID.String()).Set(float64(drift))
		if drift == 0 {
			continue
		}

		log := r.logger.
			WithField("event_id", event.ID).
			WithField("stored", event.AvailableSeats).
			WithField("expected", expected)
		if !r.repair {
			log.Warn("seat counter drift detected")
			continue
		}

		if err := r.events.SetAvailableSeats(ctx, event.ID, expected); err != nil {
			log.Error("failed to repair seat counter", err)
			continue
		}
		log.Info("seat counter repaired")
	}
	return nil
}
