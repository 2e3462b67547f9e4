package binder

import (
	"github.com/prometheus/client_golang/prometheus"
)

type binderMetrics struct {
	bindsTotal        prometheus.Counter
	bindFailuresTotal prometheus.Counter
	pushdownsTotal    prometheus.Counter
}

func newBinderMetrics() *binderMetrics {
	m := &binderMetrics{
		bindsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quiver_projector_binds_total",
			Help: "Total number of successfully bound projector specifications",
		}),
		bindFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quiver_projector_bind_failures_total",
			Help: "Total number of projector specifications that failed to bind",
		}),
		pushdownsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quiver_projector_pushdowns_total",
			Help: "Total number of projection pushdown decompositions",
		}),
	}

	return m
}

func (m *binderMetrics) register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.bindsTotal,
		m.bindFailuresTotal,
		m.pushdownsTotal,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
