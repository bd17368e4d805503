package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	BetsPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bets_placed_total",
			Help: "Total bets accepted by the validator",
		},
	)

	BetsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bets_rejected_total",
			Help: "Total bets rejected by the validator",
		},
		[]string{"reason"},
	)

	BetsSettled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bets_settled_total",
			Help: "Total bets moved to a terminal status",
		},
		[]string{"result"},
	)

	PoolRegenerations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "match_pool_regenerations_total",
			Help: "Total match pool replacements",
		},
	)

	JobErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_errors_total",
			Help: "Total scheduled task failures",
		},
		[]string{"job"},
	)
)

func Init() {
	prometheus.MustRegister(BetsPlaced)
	prometheus.MustRegister(BetsRejected)
	prometheus.MustRegister(BetsSettled)
	prometheus.MustRegister(PoolRegenerations)
	prometheus.MustRegister(JobErrors)
}
