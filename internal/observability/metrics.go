package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsAdmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "booking", Name: "bookings_admitted_total",
		Help: "Bookings that passed district admission",
	})
	DistrictConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "booking", Name: "district_conflicts_total",
		Help: "Admissions rejected because the day was locked to another district",
	})
	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "booking", Name: "bookings_cancelled_total",
		Help: "Bookings moved to cancelled",
	})
	DailySummariesSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "booking", Name: "daily_summaries_sent_total",
		Help: "Next-day schedule summaries dispatched",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "booking", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "booking",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
