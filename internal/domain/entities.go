package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Visitor struct {
	ID               uuid.UUID
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Address          string
	City             string
	Country          string
	Interests        []string
	RegistrationDate time.Time
}

func (v Visitor) FullName() string {
	return v.FirstName + " " + v.LastName
}

type Event struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Date           time.Time
	Time           string
	Location       string
	Category       string
	ImageURL       string
	Capacity       int
	AvailableSeats int
	TicketPrice    decimal.Decimal
	IsActive       bool
}

type Booking struct {
	ID          uuid.UUID
	VisitorID   uuid.UUID
	VisitorName string
	EventID     uuid.UUID
	EventName   string
	TicketCount int
	TotalAmount decimal.Decimal
	Status      string
	BookingDate time.Time
}

type Attraction struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Category     string
	OpeningHours string
	ImageURL     string
	IsActive     bool
}
