package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes counters for the triage, discovery, and booking flows.
type Metrics struct {
	triageTotal      *prometheus.CounterVec
	bookingsTotal    *prometheus.CounterVec
	searchSupplement prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		triageTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docassist",
			Subsystem: "triage",
			Name:      "analyses_total",
			Help:      "Total symptom analyses by outcome",
		}, []string{"outcome"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docassist",
			Subsystem: "bookings",
			Name:      "created_total",
			Help:      "Total appointments created by initial status",
		}, []string{"status"}),
		searchSupplement: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "docassist",
			Subsystem: "directory",
			Name:      "supplemental_results_total",
			Help:      "Total clinic results sourced from the places API",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.triageTotal, m.bookingsTotal, m.searchSupplement)
	return m
}

// ObserveTriage records one analysis with outcome "ok" or "fallback".
func (m *Metrics) ObserveTriage(outcome string) {
	if m == nil {
		return
	}
	m.triageTotal.WithLabelValues(outcome).Inc()
}

// ObserveBooking records one created appointment by initial status.
func (m *Metrics) ObserveBooking(status string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(status).Inc()
}

// ObserveSearchSupplement records clinic results merged in from the places API.
func (m *Metrics) ObserveSearchSupplement(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.searchSupplement.Add(float64(n))
}
