package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roombook",
			Name:      "booking_created_total",
			Help:      "Count of bookings created by room.",
		},
		[]string{"room"},
	)

	bookingUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "roombook",
			Name:      "booking_updated_total",
			Help:      "Count of bookings updated.",
		},
	)

	bookingDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "roombook",
			Name:      "booking_deleted_total",
			Help:      "Count of bookings deleted.",
		},
	)

	slotConflict = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roombook",
			Name:      "slot_conflict_total",
			Help:      "Count of rejected bookings by conflict source.",
		},
		[]string{"source"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingUpdated, bookingDeleted, slotConflict)
	})
}

func IncBookingCreated(room string) {
	bookingCreated.WithLabelValues(room).Inc()
}

func IncBookingUpdated() {
	bookingUpdated.Inc()
}

func IncBookingDeleted() {
	bookingDeleted.Inc()
}

// IncSlotConflict records a rejected overlap; source is "validator" for the
// optimistic pre-check and "store" for the database's authoritative check.
func IncSlotConflict(source string) {
	slotConflict.WithLabelValues(source).Inc()
}
