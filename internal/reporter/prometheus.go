package reporter

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/benchpair/benchpair/internal/result"
)

// Prometheus exposes per-pair paired-difference mean, significance, and
// outlier-count gauges, scraped over /metrics on a dedicated listener. It is opt-in:
// metrics are only registered when NewPrometheus is called, matching the
// churn telemetry module's "disabled by default, safe to call" posture.
type Prometheus struct {
	outliers    *prometheus.GaugeVec
	diffMean    *prometheus.GaugeVec
	significant *prometheus.GaugeVec
}

// NewPrometheus registers the gauges against a dedicated registry and
// starts a background HTTP server serving /metrics on addr (e.g. ":9090").
func NewPrometheus(addr string) *Prometheus {
	registry := prometheus.NewRegistry()

	p := &Prometheus{
		outliers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchpair_outliers_filtered",
			Help: "Number of paired-difference samples discarded by the outlier filter in the last run of this pair",
		}, []string{"pair"}),
		diffMean: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchpair_diff_mean_ticks",
			Help: "Mean of the paired-difference series (candidate - baseline) in timer ticks",
		}, []string{"pair"}),
		significant: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchpair_significant",
			Help: "1 if the last run of this pair was classified statistically significant, 0 otherwise",
		}, []string{"pair"}),
	}

	registry.MustRegister(p.outliers, p.diffMean, p.significant)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		_ = server.ListenAndServe()
	}()

	return p
}

func (p *Prometheus) OnStart(string) {}

func (p *Prometheus) OnComplete(run *result.RunResult) {
	p.outliers.WithLabelValues(run.Name).Set(float64(run.Outliers))
	p.diffMean.WithLabelValues(run.Name).Set(run.Diff.Mean)
	significant := 0.0
	if run.Significant {
		significant = 1.0
	}
	p.significant.WithLabelValues(run.Name).Set(significant)
}
