// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package loader

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DefinitionsLoaded counts definitions registered per category.
// Use RegisterMetrics to register this with a Prometheus registry.
var DefinitionsLoaded = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "worldpack_definitions_loaded_total",
		Help: "Total number of content definitions loaded by category",
	},
	[]string{"category"},
)

// LoadDuration observes full content pack load durations.
// Use RegisterMetrics to register this with a Prometheus registry.
var LoadDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "worldpack_load_duration_seconds",
		Help:    "Content pack load duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
)

// RegisterMetrics registers loader metrics with the given registerer.
func RegisterMetrics(reg prometheus.Registerer) error {
	if err := reg.Register(DefinitionsLoaded); err != nil {
		return err
	}
	return reg.Register(LoadDuration)
}
