package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RegistrationCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "aftas_registrations_total",
	Help: "Ranking registrations by outcome",
}, []string{"outcome"})

var ScoringDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "aftas_scoring_duration_seconds",
	Help: "Duration of a scoring pass over a competition",
	Buckets: []float64{
		0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2, 5,
	},
})

var HuntingsAppliedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "aftas_huntings_applied_total",
	Help: "Number of hunting records added to ranking scores",
})

var StandingsPublishErrorCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "aftas_standings_publish_error_total",
	Help: "Number of failed standings publications by sink",
}, []string{"sink"})

var StandingsSubscribersGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "aftas_standings_subscribers",
	Help: "Current number of websocket standings subscribers",
})
