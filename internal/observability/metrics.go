package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wascrap"

var (
	BookingsCreated    = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "bookings_created_total", Help: "Total pickup bookings submitted"})
	BookingTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "booking_transitions_total", Help: "Booking status transitions by target status"},
		[]string{"status"},
	)
	BuyerReviews = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "buyer_reviews_total", Help: "Scrap buyer approvals and rejections"},
		[]string{"decision"},
	)
	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "emails_sent_total", Help: "Outgoing emails by notification type and result"},
		[]string{"type", "result"},
	)
	OTPEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "otp_events_total", Help: "One-time code lifecycle events"},
		[]string{"event"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
