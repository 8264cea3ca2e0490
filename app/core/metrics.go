package core

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/consulta-ai/consulta-ai/pkg/metrics"
)

type Metrics struct {
	apiResponseTime  *prometheus.HistogramVec
	pipelineError    *prometheus.CounterVec
	modelRequestTime *prometheus.HistogramVec
}

func NewMetrics(ns, system string) *Metrics {
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	return &Metrics{
		apiResponseTime:  metrics.NewHistogramVec("api_response_time", []string{"api"}),
		pipelineError:    metrics.NewCounterVec("pipeline_error", []string{"stage"}),
		modelRequestTime: metrics.NewHistogramVec("model_request_time", []string{"target"}),
	}
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

// PipelineErrorInc counts failures by pipeline stage: generation,
// execution or summary.
func (m *Metrics) PipelineErrorInc(stage string) {
	m.pipelineError.WithLabelValues(stage).Inc()
}

func (m *Metrics) ModelRequestTimer(target string) *prometheus.Timer {
	return prometheus.NewTimer(m.modelRequestTime.WithLabelValues(target))
}
