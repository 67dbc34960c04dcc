package server

import (
	"crypto/subtle"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"mood_parrot/logic"
	"mood_parrot/shared"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// Exposes the bot's tick, upload and Slack latency metrics to a Prometheus scraper.
type metricsHandlerGroup struct {
	cfg      *shared.Config
	logger   shared.ILogger
	metrics  logic.IMetrics
	exporter http.Handler
}

func NewMetricsHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
) IHandlerGroup {
	if cfg.Secrets.MetricsAuth == "" {
		logger.Warnf("No metrics_auth secret configured; /metrics will refuse every scrape")
	}
	return &metricsHandlerGroup{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		exporter: promhttp.Handler(),
	}
}

func (hg *metricsHandlerGroup) Prefix() string {
	return "/"
}

func (hg *metricsHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/metrics", func(w http.ResponseWriter, r *http.Request) { hg.getMetrics(w, r) }},
	}
}

func (hg *metricsHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !hg.isAuthorized(r) {
				writeErrorResponse(w, badAuthorization, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// With no secret configured, nothing is authorized.
func (hg *metricsHandlerGroup) isAuthorized(r *http.Request) bool {
	authHeader := r.Header.Get(metricsAuthHeader)
	secret, hasBearer := strings.CutPrefix(authHeader, bearerPrefix)
	expected := hg.cfg.Secrets.MetricsAuth
	if hasBearer && secret != "" && expected != "" &&
		subtle.ConstantTimeCompare([]byte(secret), []byte(expected)) == 1 {
		return true
	}
	hg.logger.Warnf("Metrics scrape from %s with missing or invalid bearer '%s'", r.RemoteAddr, secretPrefix(secret))
	return false
}

func (hg *metricsHandlerGroup) getMetrics(w http.ResponseWriter, r *http.Request) {
	hg.logger.Debugf("Serving metrics scrape to %s", r.RemoteAddr)
	obs := hg.metrics.StartWebRequestIn("metrics")
	defer obs.Finish()
	hg.exporter.ServeHTTP(w, r)
}
