// SPDX-License-Identifier: MIT

package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reelmate_catalog_loads_total",
		Help: "Dataset load attempts by dataset and outcome",
	}, []string{"dataset", "outcome"})

	fallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reelmate_catalog_fallbacks_total",
		Help: "Times a built-in fallback dataset was substituted",
	}, []string{"dataset"})
)

func recordLoad(dataset string, ok bool) {
	outcome := "error"
	if ok {
		outcome = "ok"
	}
	loadsTotal.WithLabelValues(dataset, outcome).Inc()
}

func recordFallback(dataset string) {
	fallbacksTotal.WithLabelValues(dataset).Inc()
}
