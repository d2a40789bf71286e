package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "obhp_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "code", "method"},
	)

	BookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "obhp_bookings_created_total",
			Help: "Total bookings created",
		},
	)

	SeatRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "obhp_seat_rejections_total",
			Help: "Total booking operations rejected for insufficient seats",
		},
	)

	SeatDrift = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "obhp_seat_drift",
			Help: "Difference between stored and derived available seats per event",
		},
		[]string{"event_id"},
	)

	RateLimitExceeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "obhp_rate_limit_exceeded_total",
			Help: "Total rate limit exceeded",
		},
	)
)
