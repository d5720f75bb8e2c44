package witness

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	describeCalls = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "witness_describe_calls_total",
		Help: "The total number of calls to instrumented Describing witnesses",
	}, []string{"witness"})

	combineCalls = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "witness_combine_calls_total",
		Help: "The total number of calls to instrumented Combining witnesses",
	}, []string{"witness"})
)

// InstrumentDescribing returns a Describing that counts its calls under the
// given witness label before delegating to d.
func InstrumentDescribing[A any](name string, d Describing[A]) Describing[A] {
	counter := describeCalls.WithLabelValues(name)

	return NewDescribing(func(a A) string {
		counter.Inc()

		return d.Describe(a)
	})
}

// InstrumentCombining returns a Combining that counts its calls under the
// given witness label before delegating to c.
func InstrumentCombining[T any](name string, c Combining[T]) Combining[T] {
	counter := combineCalls.WithLabelValues(name)

	return NewCombining(func(a, b T) T {
		counter.Inc()

		return c.Combine(a, b)
	})
}
