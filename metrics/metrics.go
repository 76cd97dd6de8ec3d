// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Label values.
const (
	ResultExecutable = "executable"
	ResultMissing    = "missing"
	ResultFound      = "found"
	ResultNotFound   = "not_found"
)

// Collector records which lookups as Prometheus metrics.
type Collector struct {
	probes  *prometheus.CounterVec
	lookups *prometheus.CounterVec
	matches prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
// A nil reg leaves the metrics unregistered.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		probes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "azd_which_probes_total",
				Help: "Total number of candidate paths checked",
			},
			[]string{"result"},
		),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "azd_which_lookups_total",
				Help: "Total number of completed lookups",
			},
			[]string{"result"},
		),
		matches: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "azd_which_matches_per_lookup",
				Help:    "Number of executable matches returned per lookup",
				Buckets: []float64{0, 1, 2, 3, 5, 8},
			},
		),
	}
	if reg != nil {
		reg.MustRegister(c.probes, c.lookups, c.matches)
	}
	return c
}

// ProbeCompleted counts one candidate check.
func (c *Collector) ProbeCompleted(_ string, executable bool) {
	result := ResultMissing
	if executable {
		result = ResultExecutable
	}
	c.probes.WithLabelValues(result).Inc()
}

// LookupCompleted counts one lookup and records its match count.
func (c *Collector) LookupCompleted(_ string, matches int) {
	result := ResultNotFound
	if matches > 0 {
		result = ResultFound
	}
	c.lookups.WithLabelValues(result).Inc()
	c.matches.Observe(float64(matches))
}

// Summary is a point-in-time view of the counters.
type Summary struct {
	Probes     int `json:"probes"`
	Executable int `json:"executable"`
	Found      int `json:"found"`
	NotFound   int `json:"notFound"`
}

// Summary reads the current counter values.
func (c *Collector) Summary() Summary {
	return Summary{
		Probes:     int(counterValue(c.probes, ResultExecutable) + counterValue(c.probes, ResultMissing)),
		Executable: int(counterValue(c.probes, ResultExecutable)),
		Found:      int(counterValue(c.lookups, ResultFound)),
		NotFound:   int(counterValue(c.lookups, ResultNotFound)),
	}
}

func counterValue(vec *prometheus.CounterVec, label string) float64 {
	var m dto.Metric
	if err := vec.WithLabelValues(label).Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}
