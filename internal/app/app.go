package app

import (
	"context"
	"io"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shopcart/internal/catalog"
	"github.com/vladislavdragonenkov/shopcart/internal/console"
	"github.com/vladislavdragonenkov/shopcart/internal/domain"
	"github.com/vladislavdragonenkov/shopcart/internal/metrics"
	"github.com/vladislavdragonenkov/shopcart/internal/service/cart"
)

// Run загружает каталог и запускает интерактивную сессию на in/out.
// Ошибка загрузки каталога возвращается до входа в меню.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	logger := log.WithField("component", "app")

	loaded, err := catalog.Load(cfg.CatalogPath, logger.WithField("layer", "catalog"))
	if err != nil {
		return err
	}

	deps := NewDependencies(loaded.Products, logger)
	deps.Metrics.RecordCatalogLoaded(len(loaded.Products), loaded.Skipped)

	user := domain.NewUser(cfg.CustomerName)
	cartSvc := cart.NewService(
		user,
		deps.Catalog,
		deps.Receipts,
		deps.PaymentSvc,
		deps.Metrics,
		logger.WithField("layer", "cart"),
	)
	ctrl := console.NewController(in, out, deps.Catalog, cartSvc, deps.Metrics, logger.WithField("layer", "console"))

	runErr := ctrl.Run(ctx)
	logSessionSummary(logger, cartSvc)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile, deps.Registry); err != nil {
			logger.WithError(err).Warn("failed to write session metrics")
		} else {
			logger.WithField("path", cfg.MetricsFile).Info("session metrics written")
		}
	}

	return runErr
}

// logSessionSummary пишет итог сессии по сохранённым чекам покупателя.
func logSessionSummary(logger *log.Entry, cartSvc *cart.Service) {
	receipts, err := cartSvc.Receipts(0)
	if err != nil {
		logger.WithError(err).Warn("failed to list session receipts")
		return
	}

	spent := decimal.Zero
	for _, receipt := range receipts {
		spent = spent.Add(receipt.Total)
	}
	logger.WithFields(log.Fields{
		"customer":   cartSvc.User().Name,
		"orders":     len(receipts),
		"spent":      spent.StringFixed(2),
		"cart_lines": cartSvc.Len(),
	}).Info("session finished")
}
