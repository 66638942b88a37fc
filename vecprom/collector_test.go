package vecprom

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/vector"
)

func TestCollector(t *testing.T) {
	v := vector.New[int64]()
	for i := range 5 {
		v.PushBack(int64(i))
	}

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewCollector("test", v)))

	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
		# HELP vector_length Number of live elements.
		# TYPE vector_length gauge
		vector_length{vector="test"} 5
		# HELP vector_capacity Number of slots in the current buffer.
		# TYPE vector_capacity gauge
		vector_capacity{vector="test"} 8
		# HELP vector_size_in_use_bytes Bytes occupied by live elements.
		# TYPE vector_size_in_use_bytes gauge
		vector_size_in_use_bytes{vector="test"} 40
		# HELP vector_capacity_bytes Bytes reserved by the current buffer.
		# TYPE vector_capacity_bytes gauge
		vector_capacity_bytes{vector="test"} 64
		# HELP vector_utilization_ratio Ratio of live slots to total slots.
		# TYPE vector_utilization_ratio gauge
		vector_utilization_ratio{vector="test"} 0.625
		# HELP vector_reallocations_total Total number of buffer reallocations.
		# TYPE vector_reallocations_total counter
		vector_reallocations_total{vector="test"} 4
		# HELP vector_relocated_elements_total Total number of elements placed into a new buffer by growth or reallocating assignment, by strategy.
		# TYPE vector_relocated_elements_total counter
		vector_relocated_elements_total{strategy="copy",vector="test"} 0
		vector_relocated_elements_total{strategy="move",vector="test"} 7
	`)))
}

func TestCollectorTracksMutations(t *testing.T) {
	v := vector.New[string]()
	c := NewCollector("names", v)

	require.Equal(t, 0.0, testutil.ToFloat64(lengthOnly{c}))

	v.PushBack("a")
	v.PushBack("b")
	require.Equal(t, 2.0, testutil.ToFloat64(lengthOnly{c}))

	v.Release()
	require.Equal(t, 0.0, testutil.ToFloat64(lengthOnly{c}))
}

func TestSeveralVectorsShareRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewCollector("a", vector.New[int]())))
	require.NoError(t, reg.Register(NewCollector("b", vector.NewSized[int](3))))

	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
		# HELP vector_length Number of live elements.
		# TYPE vector_length gauge
		vector_length{vector="a"} 0
		vector_length{vector="b"} 3
	`), "vector_length"))

	// Same name twice is a duplicate registration
	require.Error(t, reg.Register(NewCollector("a", vector.New[int]())))
}

// lengthOnly narrows a Collector to its vector_length metric so it can be read
// with testutil.ToFloat64, which requires exactly one metric.
type lengthOnly struct {
	c *Collector
}

func (l lengthOnly) Describe(descs chan<- *prometheus.Desc) {
	descs <- l.c.length
}

func (l lengthOnly) Collect(metrics chan<- prometheus.Metric) {
	all := make(chan prometheus.Metric, 16)
	l.c.Collect(all)
	close(all)
	for m := range all {
		if m.Desc() == l.c.length {
			metrics <- m
		}
	}
}
