// Package vecprom exposes vector statistics as Prometheus metrics.
package vecprom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/vector"
)

// Source is anything that can report vector metrics, typically a *vector.Vector[T].
type Source interface {
	Metrics() vector.Metrics
}

var _ prometheus.Collector = &Collector{}

// Collector reports the metrics of a single vector. A vector is not
// goroutine-safe, so Collect must not run concurrently with mutations of the
// source.
type Collector struct {
	src Source

	length        *prometheus.Desc
	capacity      *prometheus.Desc
	sizeInUse     *prometheus.Desc
	capacityBytes *prometheus.Desc
	utilization   *prometheus.Desc
	reallocations *prometheus.Desc
	relocated     *prometheus.Desc
}

// NewCollector returns a collector for src. Every metric carries the const
// label vector=name, so several vectors can share a registry.
func NewCollector(name string, src Source) *Collector {
	labels := prometheus.Labels{"vector": name}
	return &Collector{
		src: src,
		length: prometheus.NewDesc(
			"vector_length",
			"Number of live elements.",
			nil, labels,
		),
		capacity: prometheus.NewDesc(
			"vector_capacity",
			"Number of slots in the current buffer.",
			nil, labels,
		),
		sizeInUse: prometheus.NewDesc(
			"vector_size_in_use_bytes",
			"Bytes occupied by live elements.",
			nil, labels,
		),
		capacityBytes: prometheus.NewDesc(
			"vector_capacity_bytes",
			"Bytes reserved by the current buffer.",
			nil, labels,
		),
		utilization: prometheus.NewDesc(
			"vector_utilization_ratio",
			"Ratio of live slots to total slots.",
			nil, labels,
		),
		reallocations: prometheus.NewDesc(
			"vector_reallocations_total",
			"Total number of buffer reallocations.",
			nil, labels,
		),
		relocated: prometheus.NewDesc(
			"vector_relocated_elements_total",
			"Total number of elements placed into a new buffer by growth or reallocating assignment, by strategy.",
			[]string{"strategy"}, labels,
		),
	}
}

func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.length
	descs <- c.capacity
	descs <- c.sizeInUse
	descs <- c.capacityBytes
	descs <- c.utilization
	descs <- c.reallocations
	descs <- c.relocated
}

func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	m := c.src.Metrics()

	metrics <- prometheus.MustNewConstMetric(c.length, prometheus.GaugeValue, float64(m.Len))
	metrics <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Cap))
	metrics <- prometheus.MustNewConstMetric(c.sizeInUse, prometheus.GaugeValue, float64(m.SizeInUse))
	metrics <- prometheus.MustNewConstMetric(c.capacityBytes, prometheus.GaugeValue, float64(m.CapacityBytes))
	metrics <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, m.Utilization)
	metrics <- prometheus.MustNewConstMetric(c.reallocations, prometheus.CounterValue, float64(m.Reallocations))
	metrics <- prometheus.MustNewConstMetric(c.relocated, prometheus.CounterValue, float64(m.MovedElements), "move")
	metrics <- prometheus.MustNewConstMetric(c.relocated, prometheus.CounterValue, float64(m.CopiedElements), "copy")
}
