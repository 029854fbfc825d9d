package demo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func newMetricsReg() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg.MustRegister(collectors.NewGoCollector())
	return reg
}

func regMetrics(r prometheus.Registerer, cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

type listMetrics struct {
	ops    *prometheus.CounterVec
	length prometheus.Gauge
}

func newListMetrics() *listMetrics {
	return &listMetrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dlist",
			Subsystem: "list",
			Name:      "ops_total",
			Help:      "The total number of list operations",
		}, []string{"op", "result"}),
		length: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dlist",
			Subsystem: "list",
			Name:      "length",
			Help:      "Current number of elements in the list",
		}),
	}
}

func (m *listMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.ops, m.length}
}

func (m *listMetrics) observe(op string, err error, length int) {
	result := "ok"
	if err != nil {
		result = "err"
	}
	m.ops.WithLabelValues(op, result).Inc()
	m.length.Set(float64(length))
}
