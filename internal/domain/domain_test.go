package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
)

func TestNewEvent_SeatsDefaultToCapacity(t *testing.T) {
	ev := domain.NewEvent("Kite Day", "", time.Now().AddDate(0, 1, 0), "10:00", "Main Lawn", "Outdoor", "", 50, decimal.RequireFromString("25.00"))

	assert.Equal(t, 50, ev.Capacity)
	assert.Equal(t, 50, ev.AvailableSeats)
	assert.True(t, ev.IsActive)
}

func TestNewBooking_TotalAndDefaults(t *testing.T) {
	visitor := domain.NewVisitor("Mere", "Kaihau", "mere@example.com", "021555123", "", "Pukekohe", "NZ", nil)
	ev := domain.NewEvent("Kite Day", "", time.Now().AddDate(0, 1, 0), "10:00", "Main Lawn", "Outdoor", "", 50, decimal.RequireFromString("25.00"))

	b := domain.NewBooking(visitor, ev, 10, "")

	assert.Equal(t, "Mere Kaihau", b.VisitorName)
	assert.Equal(t, "Kite Day", b.EventName)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.True(t, b.TotalAmount.Equal(decimal.RequireFromString("250.00")), "got %s", b.TotalAmount)
}
