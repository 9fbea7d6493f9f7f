package rpc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics mirrors the clearing node's own metrics.go pattern: one struct of
// promauto-registered collectors, optional, nil-safe.
type Metrics struct {
	ConnectionState prometheus.Gauge
	ReconnectsTotal prometheus.Counter
	RequestsTotal   *prometheus.CounterVec
}

// NewMetrics registers the transport's collectors against registry, or the
// default global registerer if nil.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		ConnectionState: factory.NewGauge(prometheus.GaugeOpts{
			Name: "rpc_transport_connection_state",
			Help: "Current connection state (0=disconnected,1=connecting,2=connected,3=reconnecting,4=failed)",
		}),
		ReconnectsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "rpc_transport_reconnects_total",
			Help: "Total reconnect attempts made since transport start",
		}),
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rpc_transport_requests_total",
			Help: "Total RPC requests by method and outcome",
		}, []string{"method", "outcome"}),
	}
}

func (t *Transport) setState(s ConnState) {
	t.state.Store(int32(s))
	if t.metrics != nil {
		t.metrics.ConnectionState.Set(float64(s))
	}
}

// SetMetrics attaches a Metrics instance; safe to call before Start.
func (t *Transport) SetMetrics(m *Metrics) {
	t.metrics = m
}
