// Package metrics 暴露生成链路的 Prometheus 指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var (
	// RiskRequests /api/risk 的请求总数
	RiskRequests = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "fortune_bear",
		Name:      "risk_requests_total",
		Help:      "Total number of daily risk generation requests.",
	})

	// RiskFallbacks 走到兜底文案的次数，按原因区分
	RiskFallbacks = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "fortune_bear",
		Name:      "risk_fallbacks_total",
		Help:      "Generation requests that were served from fallback content.",
	}, []string{"reason"})

	// ProviderErrors 生成提供方调用失败次数
	ProviderErrors = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "fortune_bear",
		Name:      "provider_errors_total",
		Help:      "Failed calls to the text generation provider.",
	})

	// DecideRequests /api/decide 的请求总数
	DecideRequests = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "fortune_bear",
		Name:      "decide_requests_total",
		Help:      "Total number of decide requests.",
	})
)

// Registry 返回本服务的指标注册表，供 /metrics 处理器使用
func Registry() *prometheus.Registry {
	return registry
}
