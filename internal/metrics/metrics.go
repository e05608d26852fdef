package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPCRequests tracks the number of handled RPCs, REST calls included
	RPCRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dbconsole_rpc_requests_total",
			Help: "The total number of handled RPCs",
		},
		[]string{"method", "code"},
	)

	// RPCDuration tracks the duration of RPCs
	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dbconsole_rpc_duration_seconds",
			Help:    "The duration of RPCs in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// HTTPRequests tracks the number of REST requests
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dbconsole_http_requests_total",
			Help: "The total number of REST requests",
		},
		[]string{"route", "status"},
	)

	// HTTPDuration tracks the duration of REST requests
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dbconsole_http_request_duration_seconds",
			Help:    "The duration of REST requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// AuditLogQueue tracks the number of audit logs waiting to be written
	AuditLogQueue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dbconsole_audit_log_queue",
			Help: "The number of audit logs waiting to be written",
		},
	)

	// AuditLogsDropped counts audit logs lost because the queue was full or
	// the write failed
	AuditLogsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dbconsole_audit_logs_dropped_total",
			Help: "The total number of audit logs that could not be written",
		},
	)

	// InstanceSyncs tracks instance sync attempts
	InstanceSyncs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dbconsole_instance_syncs_total",
			Help: "The total number of instance syncs",
		},
		[]string{"engine", "status"},
	)

	// OpenAnomalies tracks the number of open anomalies per type
	OpenAnomalies = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dbconsole_open_anomalies",
			Help: "The number of open anomalies",
		},
		[]string{"type"},
	)
)
