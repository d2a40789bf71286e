// Package search provides the case-insensitive substring matching the list
// screens use. Filtering runs over a full in-memory snapshot of a collection;
// there is no index and no pagination.
package search

import (
	"strings"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
)

func match(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func Visitors(visitors []domain.Visitor, query string) []domain.Visitor {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return visitors
	}
	var out []domain.Visitor
	for _, v := range visitors {
		if match(query, v.FirstName, v.LastName, v.Email, v.Phone, v.City) {
			out = append(out, v)
		}
	}
	return out
}

func Events(events []domain.Event, query string) []domain.Event {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return events
	}
	var out []domain.Event
	for _, e := range events {
		if match(query, e.Name, e.Location, e.Category) {
			out = append(out, e)
		}
	}
	return out
}

func Bookings(bookings []domain.Booking, query string) []domain.Booking {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return bookings
	}
	var out []domain.Booking
	for _, b := range bookings {
		if match(query, b.VisitorName, b.EventName, b.Status) {
			out = append(out, b)
		}
	}
	return out
}

func Attractions(attractions []domain.Attraction, query string) []domain.Attraction {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return attractions
	}
	var out []domain.Attraction
	for _, a := range attractions {
		if match(query, a.Name, a.Category) {
			out = append(out, a)
		}
	}
	return out
}
