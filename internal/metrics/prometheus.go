package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BalanceSyncs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "balance_sync_accounts_total",
			Help: "Total de contas sincronizadas, por plataforma e resultado",
		},
		[]string{"platform", "result"},
	)

	AlertsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alerts_created_total",
			Help: "Total de alertas criados por tipo",
		},
		[]string{"kind"},
	)

	AlertsSuppressed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alerts_suppressed_total",
			Help: "Alertas descartados pela janela de deduplicação",
		},
		[]string{"kind"},
	)

	WebhookDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_deliveries_total",
			Help: "Entregas de webhook por evento e resultado",
		},
		[]string{"event", "result"},
	)

	ReportsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_generated_total",
			Help: "Relatórios gerados por resultado",
		},
		[]string{"result"},
	)

	JobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scheduler_job_duration_seconds",
			Help:    "Duração das execuções agendadas",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"job"},
	)

	ResponseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)
)

func init() {
	prometheus.MustRegister(BalanceSyncs)
	prometheus.MustRegister(AlertsCreated)
	prometheus.MustRegister(AlertsSuppressed)
	prometheus.MustRegister(WebhookDeliveries)
	prometheus.MustRegister(ReportsGenerated)
	prometheus.MustRegister(JobDuration)
	prometheus.MustRegister(ResponseTime)
}

// Result traduz um booleano de sucesso no rótulo usado pelas métricas
func Result(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

func Handler() http.Handler {
	return promhttp.Handler()
}
