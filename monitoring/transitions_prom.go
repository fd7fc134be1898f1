// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ModerationTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "perfboard_moderation_transitions_total",
	Help: "The total number of submit, approve and reject transitions per resource type",
}, []string{"resource_type", "transition"})

var ClaimTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "perfboard_claim_transitions_total",
	Help: "The total number of claimed, approved and resolved claims",
}, []string{"transition"})

var NotificationsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "perfboard_notifications_published_total",
	Help: "The total number of published notifications per event and outcome",
}, []string{"event", "outcome"})

var TokenIntrospections = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "perfboard_token_introspections_total",
	Help: "The total number of bearer token lookups per outcome",
}, []string{"outcome"})

var ImageChecks = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "perfboard_image_check_duration_seconds",
	Help:    "Duration of container registry lookups in seconds",
	Buckets: prometheus.DefBuckets,
})
