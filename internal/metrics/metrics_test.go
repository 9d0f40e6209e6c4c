package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New()
	m.ObserveCommand("A")
	m.ObserveCommand("A")
	m.ObserveCommand("P")
	m.ObserveRejection("duplicate")
	m.ObserveSeeded(3)
	m.SetEvents(5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("A")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("P")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues("duplicate")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SeededTotal))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.EventsStored))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveCommand("A")
		m.ObserveRejection("not_found")
		m.ObserveSeeded(1)
		m.SetEvents(1)
	})
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.ObserveCommand("Q")
	m.SetEvents(2)

	path := filepath.Join(t.TempDir(), "eventcal.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `eventcal_commands_total{command="Q"} 1`)
	assert.Contains(t, text, "eventcal_events_stored 2")
}
