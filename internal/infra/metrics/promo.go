package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "bayashop"

// PromoMetrics counts promo mutations and validation outcomes.
type PromoMetrics struct {
	mutations   *prometheus.CounterVec
	validations *prometheus.CounterVec
}

func NewPromoMetrics(reg prometheus.Registerer) *PromoMetrics {
	m := &PromoMetrics{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "promo",
			Name:      "mutations_total",
			Help:      "Promo code create/update/delete transactions by result.",
		}, []string{"op", "result"}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "promo",
			Name:      "validations_total",
			Help:      "Promo code validations by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.mutations, m.validations)
	return m
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func (m *PromoMetrics) ObserveMutation(op string, err error) {
	if m == nil {
		return
	}
	result := "committed"
	if err != nil {
		result = "rolled_back"
	}
	m.mutations.WithLabelValues(op, result).Inc()
}

func (m *PromoMetrics) ObserveValidation(outcome string) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(outcome).Inc()
}
