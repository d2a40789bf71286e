package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusConfirmed = "Confirmed"
	StatusPending   = "Pending"
	StatusCancelled = "Cancelled"
)

// NewBooking snapshots the visitor and event names and prices the booking at
// the event's current ticket price. The total is not re-derived later.
func NewBooking(visitor Visitor, event Event, ticketCount int, status string) Booking {
	if status == "" {
		status = StatusConfirmed
	}
	return Booking{
		ID:          uuid.New(),
		VisitorID:   visitor.ID,
		VisitorName: visitor.FullName(),
		EventID:     event.ID,
		EventName:   event.Name,
		TicketCount: ticketCount,
		TotalAmount: event.TicketPrice.Mul(decimal.NewFromInt(int64(ticketCount))),
		Status:      status,
		BookingDate: time.Now(),
	}
}
