// Package metrics defines and registers all custom Prometheus metrics for
// the onboarding portal. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginAttemptsTotal counts login requests by outcome.
// Label:
//   - outcome: "success", "invalid_credentials", or "invalid_input"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login requests, labelled by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts registration requests by result.
// Label:
//   - result: "success", "duplicate_name", "duplicate_secret", or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration requests, labelled by result.",
	},
	[]string{"result"},
)

// OnboardingDraftsStartedTotal counts onboarding drafts opened, by role.
var OnboardingDraftsStartedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "onboarding_drafts_started_total",
		Help:      "Total number of onboarding drafts started, labelled by role.",
	},
	[]string{"role"},
)
