package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "Total de requisições HTTP atendidas",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_lookups_total",
			Help: "Consultas ao cache do overview por resultado",
		},
		[]string{"result"},
	)

	SnapshotSyncRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_snapshot_sync_runs_total",
			Help: "Execuções da sincronização de snapshots mensais",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests)
	prometheus.MustRegister(HTTPDuration)
	prometheus.MustRegister(CacheLookups)
	prometheus.MustRegister(SnapshotSyncRuns)
}
