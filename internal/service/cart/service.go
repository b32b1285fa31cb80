// Package cart реализует операции с корзиной пользователя: добавление, просмотр,
// изменение позиций и оформление заказа.
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
	"github.com/vladislavdragonenkov/shopcart/internal/metrics"
)

// View — снимок корзины для отображения.
type View struct {
	Lines []domain.CartLine
	Total decimal.Decimal
}

// Empty сообщает, что в корзине нет позиций.
func (v View) Empty() bool {
	return len(v.Lines) == 0
}

// Service владеет корзиной одного пользователя и ссылается на каталог.
type Service struct {
	user     *domain.User
	catalog  domain.CatalogRepository
	receipts domain.ReceiptRepository
	payments domain.PaymentService
	metrics  *metrics.SessionMetrics
	logger   *log.Entry
	now      func() time.Time
	newID    func() string
}

// NewService собирает сервис корзины. metrics может быть nil.
func NewService(
	user *domain.User,
	catalog domain.CatalogRepository,
	receipts domain.ReceiptRepository,
	payments domain.PaymentService,
	sessionMetrics *metrics.SessionMetrics,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.WithField("component", "cart")
	}
	return &Service{
		user:     user,
		catalog:  catalog,
		receipts: receipts,
		payments: payments,
		metrics:  sessionMetrics,
		logger:   logger.WithField("customer", user.Name),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.NewString() },
	}
}

// User возвращает владельца корзины.
func (s *Service) User() *domain.User {
	return s.user
}

// Len возвращает количество позиций в корзине.
func (s *Service) Len() int {
	return s.user.Cart.Len()
}

// AddItem добавляет новую позицию.
// Ошибки: ErrQuantityInvalid для qty < 1, ErrProductNotFound для неизвестного товара.
func (s *Service) AddItem(productID, qty int) (domain.Product, error) {
	if qty < 1 {
		return domain.Product{}, fmt.Errorf("add product %d: %w", productID, domain.ErrQuantityInvalid)
	}
	product, err := s.catalog.Get(productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("add product %d: %w", productID, err)
	}

	s.user.Cart.Add(product.ID, qty)
	if s.metrics != nil {
		s.metrics.RecordItemAdded(s.user.Cart.Len())
	}
	s.logger.WithFields(log.Fields{
		"product_id": product.ID,
		"qty":        qty,
	}).Debug("item added")

	return product, nil
}

// View разрешает позиции корзины через каталог и считает итог.
func (s *Service) View() (View, error) {
	lines, err := s.lines()
	if err != nil {
		return View{}, err
	}
	return View{Lines: lines, Total: domain.Total(lines)}, nil
}

func (s *Service) lines() ([]domain.CartLine, error) {
	entries := s.user.Cart.Entries()
	lines := make([]domain.CartLine, 0, len(entries))
	for i, entry := range entries {
		product, err := s.catalog.Get(entry.ProductID)
		if err != nil {
			return nil, fmt.Errorf("resolve cart item %d: %w", i+1, err)
		}
		lines = append(lines, domain.CartLine{
			Position:  i + 1,
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  entry.Quantity,
			UnitPrice: product.Price,
			LineTotal: product.LineTotal(entry.Quantity),
		})
	}
	return lines, nil
}

// Modify заменяет количество позиции; qty == 0 удаляет её.
// Возвращает true, если позиция удалена. При ошибке корзина не меняется.
func (s *Service) Modify(position, qty int) (bool, error) {
	removed, err := s.user.Cart.SetQuantity(position, qty)
	if err != nil {
		return false, fmt.Errorf("modify item %d: %w", position, err)
	}

	entry := s.logger.WithFields(log.Fields{"position": position, "qty": qty})
	if removed {
		if s.metrics != nil {
			s.metrics.RecordItemRemoved(s.user.Cart.Len())
		}
		entry.Debug("item removed")
	} else {
		if s.metrics != nil {
			s.metrics.RecordItemUpdated()
		}
		entry.Debug("item quantity updated")
	}
	return removed, nil
}

// Total возвращает итоговую сумму корзины.
func (s *Service) Total() (decimal.Decimal, error) {
	view, err := s.View()
	if err != nil {
		return decimal.Zero, err
	}
	return view.Total, nil
}

// Checkout оплачивает корзину, сохраняет чек и очищает корзину.
// Для пустой корзины возвращает ErrCartEmpty без изменений состояния.
func (s *Service) Checkout(ctx context.Context, paymentRef string) (domain.Receipt, error) {
	if s.user.Cart.IsEmpty() {
		return domain.Receipt{}, domain.ErrCartEmpty
	}
	if errs := s.user.Cart.ValidateInvariants(); len(errs) > 0 {
		return domain.Receipt{}, fmt.Errorf("cart invariants: %w", errors.Join(errs...))
	}

	view, err := s.View()
	if err != nil {
		return domain.Receipt{}, err
	}

	status, err := s.payments.Pay(ctx, paymentRef, view.Total)
	if err != nil {
		s.logger.WithError(err).Warn("payment failed")
		return domain.Receipt{}, fmt.Errorf("pay %s: %w", domain.FormatMoney(view.Total), err)
	}
	if status != domain.PaymentStatusCaptured {
		return domain.Receipt{}, fmt.Errorf("payment status %q: %w", status, domain.ErrPaymentDeclined)
	}

	receipt := domain.Receipt{
		ID:            s.newID(),
		Customer:      s.user.Name,
		Lines:         view.Lines,
		Total:         view.Total,
		PaymentStatus: status,
		CreatedAt:     s.now(),
	}
	if errs := receipt.ValidateInvariants(); len(errs) > 0 {
		return domain.Receipt{}, fmt.Errorf("receipt invariants: %w", errors.Join(errs...))
	}
	if err := s.receipts.Create(receipt); err != nil {
		return domain.Receipt{}, fmt.Errorf("store receipt: %w", err)
	}

	s.user.Cart.Clear()
	if s.metrics != nil {
		s.metrics.RecordCheckout(receipt.Total)
	}
	s.logger.WithFields(log.Fields{
		"receipt_id": receipt.ID,
		"total":      receipt.Total.StringFixed(2),
		"lines":      len(receipt.Lines),
	}).Info("checkout completed")

	return receipt, nil
}

// Receipts возвращает чеки текущего пользователя, новые первыми.
func (s *Service) Receipts(limit int) ([]domain.Receipt, error) {
	return s.receipts.ListByCustomer(s.user.Name, limit)
}
