// Package metrics содержит Prometheus-метрики хранилища
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// IncidentsReported - число успешно записанных инцидентов
	IncidentsReported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blueledger_incidents_reported_total",
		Help: "Total incidents appended to the ledger",
	})

	// OfficerAggregatesApplied - число применений инцидента к агрегату офицера
	OfficerAggregatesApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blueledger_officer_aggregates_applied_total",
		Help: "Total incident applications to officer aggregates",
	})

	// SightingsReported - число созданных наблюдений
	SightingsReported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blueledger_sightings_reported_total",
		Help: "Total sightings reported",
	})

	// SightingVotes - голоса по наблюдениям, applied=false для no-op по неактивным
	SightingVotes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blueledger_sighting_votes_total",
		Help: "Sighting votes by kind and whether they were applied",
	}, []string{"kind", "applied"})

	// SightingsDeactivated - деактивации по причине
	SightingsDeactivated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blueledger_sightings_deactivated_total",
		Help: "Sighting deactivations by reason",
	}, []string{"reason"})

	// SweepRuns - запуски свипера по результату
	SweepRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blueledger_sweep_runs_total",
		Help: "Expiration sweep runs by result",
	}, []string{"result"})

	// RateLimitDenied - отказы ограничителя по классу операции
	RateLimitDenied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blueledger_rate_limit_denied_total",
		Help: "Writes denied by the rate limiter by operation class",
	}, []string{"class"})

	// PolicyDenied - отказы таблицы доступа
	PolicyDenied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blueledger_policy_denied_total",
		Help: "Operations rejected by the access policy",
	}, []string{"entity", "operation"})

	// NotificationsDelivered - доставка уведомлений о наблюдениях по результату
	NotificationsDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blueledger_notifications_total",
		Help: "Sighting notification deliveries by result",
	}, []string{"result"})
)
