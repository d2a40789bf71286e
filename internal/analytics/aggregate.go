// Package analytics computes the dashboard aggregations. All reductions are
// pure functions over a fetched snapshot; grouping is by a single key, sorted
// descending and truncated to TopN.
package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
)

const TopN = 10

type Summary struct {
	TotalVisitors int             `json:"total_visitors"`
	TotalBookings int             `json:"total_bookings"`
	ActiveEvents  int             `json:"active_events"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

func Summarize(visitors []domain.Visitor, bookings []domain.Booking, events []domain.Event, now time.Time) Summary {
	s := Summary{
		TotalVisitors: len(visitors),
		TotalBookings: len(bookings),
		TotalRevenue:  decimal.Zero,
	}
	for _, e := range events {
		if e.IsActive && !e.Date.Before(now) {
			s.ActiveEvents++
		}
	}
	for _, b := range bookings {
		s.TotalRevenue = s.TotalRevenue.Add(b.TotalAmount)
	}
	return s
}

type EventStat struct {
	EventID   uuid.UUID       `json:"event_id"`
	EventName string          `json:"event_name"`
	Bookings  int             `json:"bookings"`
	Revenue   decimal.Decimal `json:"revenue"`
}

func PopularEvents(bookings []domain.Booking, limit int) []EventStat {
	byEvent := map[uuid.UUID]*EventStat{}
	for _, b := range bookings {
		stat, ok := byEvent[b.EventID]
		if !ok {
			stat = &EventStat{EventID: b.EventID, EventName: b.EventName, Revenue: decimal.Zero}
			byEvent[b.EventID] = stat
		}
		stat.Bookings++
		stat.Revenue = stat.Revenue.Add(b.TotalAmount)
	}

	stats := make([]EventStat, 0, len(byEvent))
	for _, s := range byEvent {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Bookings != stats[j].Bookings {
			return stats[i].Bookings > stats[j].Bookings
		}
		return stats[i].EventName < stats[j].EventName
	})
	return truncate(stats, limit)
}

type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

func TopCities(visitors []domain.Visitor, limit int) []KeyCount {
	counts := map[string]int{}
	for _, v := range visitors {
		if v.City != "" {
			counts[v.City]++
		}
	}
	return topCounts(counts, limit)
}

func TopInterests(visitors []domain.Visitor, limit int) []KeyCount {
	counts := map[string]int{}
	for _, v := range visitors {
		for _, tag := range v.Interests {
			if tag != "" {
				counts[tag]++
			}
		}
	}
	return topCounts(counts, limit)
}

func topCounts(counts map[string]int, limit int) []KeyCount {
	out := make([]KeyCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, KeyCount{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return truncate(out, limit)
}

func truncate[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
