package booking

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/observability"
)

// EventStore is the slice of the events collection the booking workflow needs.
// ReserveSeats must be atomic: it either decrements availableSeats by n while
// availableSeats >= n, or fails with ErrInsufficientSeats without any change.
type EventStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	ReserveSeats(ctx context.Context, id uuid.UUID, n int) (*domain.Event, error)
	ReleaseSeats(ctx context.Context, id uuid.UUID, n int) (*domain.Event, error)
}

type BookingStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Insert(ctx context.Context, booking domain.Booking) error
	Update(ctx context.Context, booking domain.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type VisitorStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Visitor, error)
}

type Publisher interface {
	PublishJSON(ctx context.Context, key string, payload interface{}) error
}

// Service keeps an event's availableSeats consistent with its bookings. Seat
// adjustment and the booking write are not a single storage transaction; the
// seat side goes first because it is the conditional one, and a failed booking
// write is compensated by the inverse adjustment.
type Service struct {
	events   EventStore
	bookings BookingStore
	visitors VisitorStore
	pub      Publisher
	logger   observability.Logger
}

func NewService(events EventStore, bookings BookingStore, visitors VisitorStore, pub Publisher, logger observability.Logger) *Service {
	return &Service{
		events:   events,
		bookings: bookings,
		visitors: visitors,
		pub:      pub,
		logger:   logger,
	}
}

func (s *Service) Create(ctx context.Context, visitorID, eventID uuid.UUID, ticketCount int, status string) (*domain.Booking, error) {
	if ticketCount < 1 {
		return nil, errors.Wrap(domain.ErrValidation, "ticket count must be at least 1")
	}

	visitor, err := s.visitors.Get(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	event, err := s.events.ReserveSeats(ctx, eventID, ticketCount)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientSeats) {
			observability.SeatRejections.Inc()
		}
		return nil, err
	}

	b := domain.NewBooking(*visitor, *event, ticketCount, status)
	if err := s.bookings.Insert(ctx, b); err != nil {
		if _, rerr := s.events.ReleaseSeats(ctx, eventID, ticketCount); rerr != nil {
			s.logger.WithField("event_id", eventID).Error("failed to release seats after insert failure", rerr)
		}
		return nil, err
	}

	observability.BookingsCreated.Inc()
	s.publish(ctx, "booking.created", b)
	return &b, nil
}

func (s *Service) Update(ctx context.Context, bookingID uuid.UUID, newTicketCount int, newStatus string) (*domain.Booking, error) {
	if newTicketCount < 1 {
		return nil, errors.Wrap(domain.ErrValidation, "ticket count must be at least 1")
	}

	existing, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	delta := newTicketCount - existing.TicketCount

	var event *domain.Event
	switch {
	case delta > 0:
		event, err = s.events.ReserveSeats(ctx, existing.EventID, delta)
	case delta < 0:
		event, err = s.events.ReleaseSeats(ctx, existing.EventID, -delta)
	default:
		event, err = s.events.Get(ctx, existing.EventID)
	}
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientSeats) {
			observability.SeatRejections.Inc()
		}
		return nil, err
	}

	updated := *existing
	updated.TicketCount = newTicketCount
	updated.TotalAmount = event.TicketPrice.Mul(decimal.NewFromInt(int64(newTicketCount)))
	if newStatus != "" {
		updated.Status = newStatus
	}

	if err := s.bookings.Update(ctx, updated); err != nil {
		s.compensateSeatDelta(ctx, existing.EventID, delta)
		return nil, err
	}

	s.publish(ctx, "booking.updated", updated)
	return &updated, nil
}

// Delete releases the booking's seats back to its event, then removes the
// booking. The event is looked up fresh; if it no longer exists there is
// nothing to release into and only the booking is removed.
func (s *Service) Delete(ctx context.Context, bookingID uuid.UUID) error {
	b, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		return err
	}

	if _, err := s.events.ReleaseSeats(ctx, b.EventID, b.TicketCount); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return err
	}

	s.publish(ctx, "booking.deleted", *b)
	return nil
}

func (s *Service) compensateSeatDelta(ctx context.Context, eventID uuid.UUID, delta int) {
	var err error
	switch {
	case delta > 0:
		_, err = s.events.ReleaseSeats(ctx, eventID, delta)
	case delta < 0:
		_, err = s.events.ReserveSeats(ctx, eventID, -delta)
	}
	if err != nil {
		s.logger.WithField("event_id", eventID).Error("failed to compensate seat adjustment", err)
	}
}

func (s *Service) publish(ctx context.Context, key string, b domain.Booking) {
	if s.pub == nil {
		return
	}
	payload := map[string]interface{}{
		"booking_id":   b.ID,
		"visitor_id":   b.VisitorID,
		"event_id":     b.EventID,
		"ticket_count": b.TicketCount,
		"total_amount": b.TotalAmount.StringFixed(2),
		"status":       b.Status,
	}
	if err := s.pub.PublishJSON(ctx, key, payload); err != nil {
		s.logger.WithField("key", key).Warn("failed to publish booking event", err)
	}
}
