// manager.go
//
// A personal workout tracking data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of workout-tracker.
// workout-tracker is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// workout-tracker is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with workout-tracker.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds the domain counters exported on /metrics
type Manager struct {
	CounterSetsLogged          prometheus.Counter
	CounterBodyMetricsRecorded *prometheus.CounterVec
	CounterSettingsUpserts     *prometheus.CounterVec
	CounterCatalogSeeds        prometheus.Counter
}

func NewTestManager() *Manager {
	return NewManager("workouttracker", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("workouttracker", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterSetsLogged := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sets_logged",
		Help:      "The total number of logged exercise sets",
	})
	counterBodyMetricsRecorded := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "body_metrics_recorded",
		Help:      "The total number of recorded body metrics",
	}, []string{"metric_type"})
	counterSettingsUpserts := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "settings_upserts",
		Help:      "The total number of user settings upserts",
	}, []string{"operation"})
	counterCatalogSeeds := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "catalog_seeds",
		Help:      "The total number of completed catalog seeds",
	})

	return &Manager{
		CounterSetsLogged:          counterSetsLogged,
		CounterBodyMetricsRecorded: counterBodyMetricsRecorded,
		CounterSettingsUpserts:     counterSettingsUpserts,
		CounterCatalogSeeds:        counterCatalogSeeds,
	}
}
