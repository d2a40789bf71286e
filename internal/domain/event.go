package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewEvent assigns AvailableSeats from capacity explicitly. A new event always
// starts with every seat open; callers never set the counter directly.
func NewEvent(name, description string, date time.Time, startTime, location, category, imageURL string, capacity int, ticketPrice decimal.Decimal) Event {
	return Event{
		ID:             uuid.New(),
		Name:           name,
		Description:    description,
		Date:           date,
		Time:           startTime,
		Location:       location,
		Category:       category,
		ImageURL:       imageURL,
		Capacity:       capacity,
		AvailableSeats: capacity,
		TicketPrice:    ticketPrice,
		IsActive:       true,
	}
}
