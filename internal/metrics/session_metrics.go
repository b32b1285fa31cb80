package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Причины некорректного ввода для метки reason.
const (
	ReasonMenuChoice = "menu_choice"
	ReasonProductID  = "product_id"
	ReasonItemNumber = "item_number"
	ReasonQuantity   = "quantity"
)

// SessionMetrics содержит метрики одной сессии покупок.
type SessionMetrics struct {
	// Счётчики операций с корзиной
	itemsAdded   prometheus.Counter
	itemsUpdated prometheus.Counter
	itemsRemoved prometheus.Counter
	checkouts    prometheus.Counter

	invalidInput *prometheus.CounterVec

	checkoutAmount prometheus.Histogram

	cartLines       prometheus.Gauge
	catalogProducts prometheus.Gauge
	catalogSkipped  prometheus.Gauge
}

// NewSessionMetrics создаёт метрики и регистрирует их в registerer.
// nil означает prometheus.DefaultRegisterer.
func NewSessionMetrics(registerer prometheus.Registerer) *SessionMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &SessionMetrics{
		itemsAdded: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shopcart_items_added_total",
			Help: "Total number of cart entries added",
		}),
		itemsUpdated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shopcart_items_updated_total",
			Help: "Total number of cart entry quantity changes",
		}),
		itemsRemoved: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shopcart_items_removed_total",
			Help: "Total number of cart entries removed",
		}),
		checkouts: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shopcart_checkouts_total",
			Help: "Total number of completed checkouts",
		}),
		invalidInput: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "shopcart_invalid_input_total",
			Help: "Total number of rejected interactive inputs",
		}, []string{"reason"}),
		checkoutAmount: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "shopcart_checkout_amount_dollars",
			Help:    "Checkout totals in dollars",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		cartLines: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "shopcart_cart_lines",
			Help: "Current number of entries in the cart",
		}),
		catalogProducts: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "shopcart_catalog_products",
			Help: "Number of products loaded into the catalog",
		}),
		catalogSkipped: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "shopcart_catalog_skipped_lines",
			Help: "Number of malformed catalog lines skipped at load",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordCatalogLoaded фиксирует размер каталога и число пропущенных строк.
func (m *SessionMetrics) RecordCatalogLoaded(products, skipped int) {
	m.catalogProducts.Set(float64(products))
	m.catalogSkipped.Set(float64(skipped))
}

// RecordItemAdded увеличивает счётчик добавлений и обновляет размер корзины.
func (m *SessionMetrics) RecordItemAdded(cartLines int) {
	m.itemsAdded.Inc()
	m.cartLines.Set(float64(cartLines))
}

// RecordItemUpdated увеличивает счётчик изменений количества.
func (m *SessionMetrics) RecordItemUpdated() {
	m.itemsUpdated.Inc()
}

// RecordItemRemoved увеличивает счётчик удалений и обновляет размер корзины.
func (m *SessionMetrics) RecordItemRemoved(cartLines int) {
	m.itemsRemoved.Inc()
	m.cartLines.Set(float64(cartLines))
}

// RecordCheckout записывает сумму заказа и обнуляет размер корзины.
func (m *SessionMetrics) RecordCheckout(total decimal.Decimal) {
	m.checkouts.Inc()
	m.checkoutAmount.Observe(total.InexactFloat64())
	m.cartLines.Set(0)
}

// RecordInvalidInput увеличивает счётчик отклонённого ввода.
func (m *SessionMetrics) RecordInvalidInput(reason string) {
	m.invalidInput.WithLabelValues(reason).Inc()
}

// WriteTextfile сохраняет метрики в формате text exposition (для node_exporter textfile collector).
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
