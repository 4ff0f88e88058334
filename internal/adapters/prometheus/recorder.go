package prometheus

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/guildandgrove/website/internal/domain"
)

const (
	EstimatesCollectorName = "gg_estimates_total"
	FeesCollectorName      = "gg_estimate_annual_fees"
)

// Recorder exposes estimator activity as Prometheus collectors.
type Recorder struct {
	estimates *prometheus.CounterVec
	fees      *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		estimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: EstimatesCollectorName,
			Help: "Number of savings estimates computed, partitioned by source.",
		}, []string{"source"}),
		fees: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    FeesCollectorName,
			Help:    "Estimated annual agency fee spend, partitioned by source.",
			Buckets: prometheus.ExponentialBuckets(10_000, 4, 8),
		}, []string{"source"}),
	}

	for _, c := range []prometheus.Collector{r.estimates, r.fees} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering estimate collector: %w", err)
		}
	}
	return r, nil
}

func (r *Recorder) RecordEstimate(ctx context.Context, source string, est domain.Estimate) error {
	r.estimates.WithLabelValues(source).Inc()
	r.fees.WithLabelValues(source).Observe(est.AnnualFees)
	return nil
}

func (r *Recorder) Close(ctx context.Context) error {
	return nil
}
