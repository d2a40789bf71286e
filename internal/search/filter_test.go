package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/search"
)

func TestVisitors_MatchesAnyDisplayField(t *testing.T) {
	visitors := []domain.Visitor{
		{FirstName: "Aroha", LastName: "Ngata", Email: "aroha@example.com", Phone: "0211", City: "Tuakau"},
		{FirstName: "Ben", LastName: "Smith", Email: "ben@example.com", Phone: "0225", City: "Pukekohe"},
	}

	assert.Len(t, search.Visitors(visitors, "PUKE"), 1)
	assert.Len(t, search.Visitors(visitors, "example.com"), 2)
	assert.Len(t, search.Visitors(visitors, "0211"), 1)
	assert.Empty(t, search.Visitors(visitors, "wellington"))
}

func TestVisitors_BlankQueryReturnsSnapshot(t *testing.T) {
	visitors := []domain.Visitor{{FirstName: "Aroha"}}
	assert.Equal(t, visitors, search.Visitors(visitors, "  "))
}

func TestBookings_MatchesStatus(t *testing.T) {
	bookings := []domain.Booking{
		{VisitorName: "Aroha Ngata", EventName: "Kite Day", Status: domain.StatusConfirmed},
		{VisitorName: "Ben Smith", EventName: "Harbour Walk", Status: domain.StatusPending},
	}

	got := search.Bookings(bookings, "pending")
	assert.Len(t, got, 1)
	assert.Equal(t, "Ben Smith", got[0].VisitorName)
}

func TestEventsAndAttractions(t *testing.T) {
	events := []domain.Event{
		{Name: "Kite Day", Location: "Main Lawn", Category: "Outdoor"},
		{Name: "Night Tour", Location: "Wharf Gate", Category: "Guided"},
	}
	assert.Len(t, search.Events(events, "lawn"), 1)

	attractions := []domain.Attraction{
		{Name: "Heritage Museum", Category: "Indoor"},
		{Name: "Bird Sanctuary", Category: "Nature"},
	}
	assert.Len(t, search.Attractions(attractions, "nature"), 1)
}
