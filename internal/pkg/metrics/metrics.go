package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	ResultSuccess = "success"
	ResultBusy    = "busy"
	ResultFail    = "fail"
)

type Metrics struct {
	LockOpsTotal *prometheus.CounterVec   // op, result=success|busy|fail
	LockOpMS     *prometheus.HistogramVec // op
	LocksHeld    prometheus.Gauge
	LockPruned   prometheus.Counter

	CheckoutTotal *prometheus.CounterVec // result=success|conflict|replayed|fail

	OutboxPublishedTotal *prometheus.CounterVec // topic
	OutboxFailedTotal    *prometheus.CounterVec // topic, terminal=true|false
}

// New registers every collector on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LockOpsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "slot_lock_ops_total",
				Help: "Slot lock operations by op and result",
			},
			[]string{"op", "result"},
		),
		LockOpMS: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "slot_lock_op_latency_ms",
				Help:    "Latency of slot lock operations (ms)",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1ms .. ~2048ms
			},
			[]string{"op"},
		),
		LocksHeld: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "slot_locks_held",
			Help: "Number of slot locks seen by the last janitor sweep",
		}),
		LockPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "slot_lock_index_pruned_total",
			Help: "Holder index entries removed after their lock expired",
		}),
		CheckoutTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_total",
				Help: "Checkout attempts by result",
			},
			[]string{"result"},
		),
		OutboxPublishedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outbox_published_total",
				Help: "Booking events published to the broker",
			},
			[]string{"topic"},
		),
		OutboxFailedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outbox_failed_total",
				Help: "Booking event publish failures",
			},
			[]string{"topic", "terminal"},
		),
	}

	reg.MustRegister(
		m.LockOpsTotal,
		m.LockOpMS,
		m.LocksHeld,
		m.LockPruned,
		m.CheckoutTotal,
		m.OutboxPublishedTotal,
		m.OutboxFailedTotal,
	)

	return m
}
