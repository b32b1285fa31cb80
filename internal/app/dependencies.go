package app

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
	"github.com/vladislavdragonenkov/shopcart/internal/metrics"
	"github.com/vladislavdragonenkov/shopcart/internal/service/payment"
	"github.com/vladislavdragonenkov/shopcart/internal/storage/memory"
)

// Dependencies содержит все зависимости сессии.
type Dependencies struct {
	Catalog    domain.CatalogRepository
	Receipts   domain.ReceiptRepository
	PaymentSvc domain.PaymentService
	Registry   *prometheus.Registry
	Metrics    *metrics.SessionMetrics
	Logger     *log.Entry
}

// NewDependencies собирает зависимости поверх загруженного каталога.
// NOTE: платёжный сервис — заглушка, реального списания нет.
func NewDependencies(products []domain.Product, logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	registry := prometheus.NewRegistry()
	return &Dependencies{
		Catalog:    memory.NewCatalogRepository(products),
		Receipts:   memory.NewReceiptRepository(),
		PaymentSvc: payment.NewMockService(),
		Registry:   registry,
		Metrics:    metrics.NewSessionMetrics(registry),
		Logger:     logger,
	}
}
