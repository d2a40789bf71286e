package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
)

type visitorResponse struct {
	ID               uuid.UUID `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	Country          string    `json:"country"`
	Interests        []string  `json:"interests"`
	RegistrationDate time.Time `json:"registration_date"`
}

func toVisitorResponse(v domain.Visitor) visitorResponse {
	return visitorResponse{
		ID:               v.ID,
		FirstName:        v.FirstName,
		LastName:         v.LastName,
		Email:            v.Email,
		Phone:            v.Phone,
		Address:          v.Address,
		City:             v.City,
		Country:          v.Country,
		Interests:        v.Interests,
		RegistrationDate: v.RegistrationDate,
	}
}

func toVisitorResponses(visitors []domain.Visitor) []visitorResponse {
	out := make([]visitorResponse, 0, len(visitors))
	for _, v := range visitors {
		out = append(out, toVisitorResponse(v))
	}
	return out
}

type eventResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Location       string    `json:"location"`
	Category       string    `json:"category"`
	ImageURL       string    `json:"image_url"`
	Capacity       int       `json:"capacity"`
	AvailableSeats int       `json:"available_seats"`
	TicketPrice    string    `json:"ticket_price"`
	IsActive       bool      `json:"is_active"`
}

func toEventResponse(e domain.Event) eventResponse {
	return eventResponse{
		ID:             e.ID,
		Name:           e.Name,
		Description:    e.Description,
		Date:           e.Date.Format("2006-01-02"),
		Time:           e.Time,
		Location:       e.Location,
		Category:       e.Category,
		ImageURL:       e.ImageURL,
		Capacity:       e.Capacity,
		AvailableSeats: e.AvailableSeats,
		TicketPrice:    e.TicketPrice.StringFixed(2),
		IsActive:       e.IsActive,
	}
}

func toEventResponses(events []domain.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}

type bookingResponse struct {
	ID          uuid.UUID `json:"id"`
	VisitorID   uuid.UUID `json:"visitor_id"`
	VisitorName string    `json:"visitor_name"`
	EventID     uuid.UUID `json:"event_id"`
	EventName   string    `json:"event_name"`
	TicketCount int       `json:"ticket_count"`
	TotalAmount string    `json:"total_amount"`
	Status      string    `json:"status"`
	BookingDate time.Time `json:"booking_date"`
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:          b.ID,
		VisitorID:   b.VisitorID,
		VisitorName: b.VisitorName,
		EventID:     b.EventID,
		EventName:   b.EventName,
		TicketCount: b.TicketCount,
		TotalAmount: b.TotalAmount.StringFixed(2),
		Status:      b.Status,
		BookingDate: b.BookingDate,
	}
}

func toBookingResponses(bookings []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}

type attractionResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	OpeningHours string    `json:"opening_hours"`
	ImageURL     string    `json:"image_url"`
	IsActive     bool      `json:"is_active"`
}

func toAttractionResponse(a domain.Attraction) attractionResponse {
	return attractionResponse(a)
}

func toAttractionResponses(attractions []domain.Attraction) []attractionResponse {
	out := make([]attractionResponse, 0, len(attractions))
	for _, a := range attractions {
		out = append(out, toAttractionResponse(a))
	}
	return out
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
