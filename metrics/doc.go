// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package metrics exports lookup statistics as Prometheus metrics.
//
// A Collector is a which.Observer:
//
//	reg := prometheus.NewRegistry()
//	c := metrics.NewCollector(reg)
//	path, err := which.Which("node", which.WithObserver(c))
//
// Exported metrics:
//   - azd_which_probes_total{result="executable|missing"}
//   - azd_which_lookups_total{result="found|not_found"}
//   - azd_which_matches_per_lookup (histogram)
package metrics
