package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"basket/internal/domain"
	"basket/internal/domain/entity"
)

const namespace = "basket"

// BasketMetrics публикует результаты операций и итоги корзины в Prometheus.
type BasketMetrics struct {
	operations *prometheus.CounterVec
	items      prometheus.Gauge
	discounted prometheus.Gauge
	sums       *prometheus.GaugeVec
}

func NewBasketMetrics(reg prometheus.Registerer) *BasketMetrics {
	m := &BasketMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Basket operations by name and result code.",
		}, []string{"operation", "result"}),
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "items",
			Help:      "Number of items in the basket.",
		}),
		discounted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "discounted_items",
			Help:      "Number of items with a non-zero discount.",
		}),
		sums: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sum",
			Help:      "Basket sum with and without discount.",
		}, []string{"kind"}),
	}

	reg.MustRegister(m.operations, m.items, m.discounted, m.sums)

	return m
}

func (m *BasketMetrics) OperationDone(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
		if code, ok := domain.GetCode(err); ok {
			result = string(code)
		}
	}

	m.operations.WithLabelValues(op, result).Inc()
}

func (m *BasketMetrics) TotalsChanged(t entity.Totals) {
	m.items.Set(float64(t.Count))
	m.discounted.Set(float64(t.DiscountedCount))
	m.sums.WithLabelValues("without_discount").Set(t.SumWithoutDiscount)
	m.sums.WithLabelValues("with_discount").Set(t.SumWithDiscount)
}
