package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	mutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sport_tracker",
		Subsystem: "state",
		Name:      "mutations_total",
		Help:      "State mutations applied, by operation.",
	}, []string{"op"})
	activitiesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "sport_tracker",
		Subsystem: "state",
		Name:      "activities",
		Help:      "Activities currently registered.",
	})
	snapshotWritesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sport_tracker",
		Subsystem: "persistence",
		Name:      "snapshot_writes_total",
		Help:      "Snapshots durably written to the local store.",
	})
	snapshotErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sport_tracker",
		Subsystem: "persistence",
		Name:      "snapshot_errors_total",
		Help:      "Snapshot writes that failed.",
	})
	importFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sport_tracker",
		Subsystem: "persistence",
		Name:      "import_failures_total",
		Help:      "Imports rejected before adopting any state.",
	})
)

func init() {
	prometheus.MustRegister(
		mutationsTotal,
		activitiesGauge,
		snapshotWritesTotal,
		snapshotErrorsTotal,
		importFailuresTotal,
	)
}

// RecordMutation counts one applied state mutation.
func RecordMutation(op string) {
	mutationsTotal.WithLabelValues(op).Inc()
}

// SetActivityCount updates the registry size gauge.
func SetActivityCount(n int) {
	activitiesGauge.Set(float64(n))
}

// RecordSnapshotWrite counts a snapshot write attempt.
func RecordSnapshotWrite(err error) {
	if err != nil {
		snapshotErrorsTotal.Inc()
		return
	}
	snapshotWritesTotal.Inc()
}

// RecordImportFailure counts a rejected import.
func RecordImportFailure() {
	importFailuresTotal.Inc()
}
