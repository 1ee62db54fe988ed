package metrics

import (
	"os"

	"harborhr/backend/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestCounter conta o total de requisições HTTP.
	HTTPRequestCounter *prometheus.CounterVec

	// HTTPRequestDuration observa a duração das requisições HTTP.
	HTTPRequestDuration *prometheus.HistogramVec

	// AppInfo expõe informações sobre a aplicação.
	AppInfo *prometheus.GaugeVec

	// AppVersion é a versão da aplicação, carregada de config.Cfg.AppVersion.
	AppVersion = "unknown"
)

func init() {
	if config.Cfg.AppVersion != "" {
		AppVersion = config.Cfg.AppVersion
	} else if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		AppVersion = envVersion
	}

	HTTPRequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "harborhr_http_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "harborhr_http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "harborhr_app_info",
			Help: "Information about the HarborHR application.",
		},
		[]string{"version"},
	)
	AppInfo.With(prometheus.Labels{"version": AppVersion}).Set(1)
}
