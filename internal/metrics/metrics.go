package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sportbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportbook_bookings_total",
			Help: "Booking state changes by resulting status",
		},
		[]string{"status"},
	)

	BookingConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportbook_booking_conflicts_total",
			Help: "Booking attempts rejected because the slot was not available",
		},
		[]string{"reason"},
	)

	BookingCancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportbook_booking_cancellations_total",
			Help: "Total number of booking cancellations by refund percentage",
		},
		[]string{"refund_percent"},
	)

	RefundAmountTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportbook_refund_amount_total",
			Help: "Sum of refunded amounts",
		},
	)

	BookingRevenueTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportbook_booking_revenue_total",
			Help: "Sum of total prices of created bookings",
		},
	)

	SlotsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportbook_slots_created_total",
			Help: "Total number of slots created",
		},
		[]string{"mode"},
	)

	SlotsSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportbook_slots_skipped_total",
			Help: "Bulk-generated slots skipped because of an overlap",
		},
	)

	ReviewsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportbook_reviews_created_total",
			Help: "Total number of reviews created",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportbook_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sportbook_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(status string) {
	BookingsTotal.WithLabelValues(status).Inc()
}

func RecordBookingCreated(totalPrice float64) {
	RecordBooking("PENDING")
	BookingRevenueTotal.Add(totalPrice)
}

func RecordBookingConflict(reason string) {
	BookingConflictsTotal.WithLabelValues(reason).Inc()
}

func RecordBookingCancellation(refundPercent int, refundAmount float64) {
	RecordBooking("CANCELLED")
	BookingCancellationsTotal.WithLabelValues(strconv.Itoa(refundPercent)).Inc()
	if refundAmount > 0 {
		RefundAmountTotal.Add(refundAmount)
	}
}

func RecordSlotsCreated(mode string, n int) {
	if n > 0 {
		SlotsCreatedTotal.WithLabelValues(mode).Add(float64(n))
	}
}

func RecordSlotsSkipped(n int) {
	if n > 0 {
		SlotsSkippedTotal.Add(float64(n))
	}
}

func RecordReviewCreated() {
	ReviewsCreatedTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
