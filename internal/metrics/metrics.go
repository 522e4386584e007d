// Package metrics содержит prometheus-метрики сервиса AccountBot.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "accountbot"

// Metrics объединяет счётчики сервиса. Все методы безопасны для nil-получателя.
type Metrics struct {
	accountsGenerated   *prometheus.CounterVec
	generationFallbacks prometheus.Counter
	lifecycle           *prometheus.CounterVec
	chatRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

// New регистрирует метрики в указанном регистраторе.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}

	accountsGenerated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_generated_total",
		Help:      "Generated accounts by credential source.",
	}, []string{"source"})
	generationFallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_fallbacks_total",
		Help:      "Generation requests served by local synthesis after an upstream failure.",
	})
	lifecycle := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lifecycle_transitions_total",
		Help:      "Applied account lifecycle transitions.",
	}, []string{"action"})
	chatRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "support_chat_requests_total",
		Help:      "Support chat requests by outcome.",
	}, []string{"outcome"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	reg.MustRegister(accountsGenerated, generationFallbacks, lifecycle, chatRequests, httpDuration)

	return &Metrics{
		accountsGenerated:   accountsGenerated,
		generationFallbacks: generationFallbacks,
		lifecycle:           lifecycle,
		chatRequests:        chatRequests,
		httpDuration:        httpDuration,
	}
}

// AccountsGenerated учитывает n аккаунтов, полученных из источника source.
func (m *Metrics) AccountsGenerated(source string, n int) {
	if m == nil || m.accountsGenerated == nil || n <= 0 {
		return
	}
	m.accountsGenerated.WithLabelValues(normalizeLabel(source)).Add(float64(n))
}

// GenerationFallback учитывает переход генерации на локальный синтез.
func (m *Metrics) GenerationFallback() {
	if m == nil || m.generationFallbacks == nil {
		return
	}
	m.generationFallbacks.Inc()
}

// LifecycleTransition учитывает применённый переход жизненного цикла.
func (m *Metrics) LifecycleTransition(action string) {
	if m == nil || m.lifecycle == nil {
		return
	}
	m.lifecycle.WithLabelValues(normalizeLabel(action)).Inc()
}

// ChatRequest учитывает обращение к чату поддержки с результатом outcome.
func (m *Metrics) ChatRequest(outcome string) {
	if m == nil || m.chatRequests == nil {
		return
	}
	m.chatRequests.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveHTTP записывает длительность обработки HTTP-запроса.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil || m.httpDuration == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, normalizeLabel(route), strconv.Itoa(status)).Observe(d.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
