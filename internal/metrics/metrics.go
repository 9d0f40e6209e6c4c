package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts organizer activity. It owns a private registry so a
// process can dump it to a node-exporter textfile on exit. A nil *Metrics
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	CommandsTotal   *prometheus.CounterVec
	RejectionsTotal *prometheus.CounterVec
	SeededTotal     prometheus.Counter
	EventsStored    prometheus.Gauge
}

// New creates a new Metrics instance with all organizer metrics registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		CommandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "eventcal_commands_total",
			Help: "Commands read by the organizer, by command token",
		}, []string{"command"}),
		RejectionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "eventcal_rejections_total",
			Help: "Add and remove requests refused, by reason",
		}, []string{"reason"}),
		SeededTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventcal_seeded_events_total",
			Help: "Events admitted from an imported calendar",
		}),
		EventsStored: factory.NewGauge(prometheus.GaugeOpts{
			Name: "eventcal_events_stored",
			Help: "Events currently on the calendar",
		}),
	}
}

// ObserveCommand records one dispatched command.
func (m *Metrics) ObserveCommand(command string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(command).Inc()
}

// ObserveRejection records one refused request.
func (m *Metrics) ObserveRejection(reason string) {
	if m == nil {
		return
	}
	m.RejectionsTotal.WithLabelValues(reason).Inc()
}

// ObserveSeeded records events admitted from an import.
func (m *Metrics) ObserveSeeded(n int) {
	if m == nil {
		return
	}
	m.SeededTotal.Add(float64(n))
}

// SetEvents records the current registry size.
func (m *Metrics) SetEvents(n int) {
	if m == nil {
		return
	}
	m.EventsStored.Set(float64(n))
}

// WriteTextfile writes the registry in the text exposition format,
// replacing path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
