// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package compose

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CompositionsTotal counts composed zone requests by result: canonical
// (no partials applied), composed, or rejected.
var CompositionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "worldpack_compositions_total",
		Help: "Total number of zone composition requests by result.",
	},
	[]string{"result"},
)

// RegisterMetrics registers composition metrics with the given registerer.
func RegisterMetrics(reg prometheus.Registerer) error {
	return reg.Register(CompositionsTotal)
}
