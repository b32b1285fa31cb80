package payment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

// MockService — конфигурируемая заглушка PaymentService.
// Реального списания нет: по умолчанию любой платёж считается принятым.
type MockService struct {
	PayStatus domain.PaymentStatus
	PayErr    error

	PayCalls int
	// LastAmount — сумма последнего вызова Pay.
	LastAmount decimal.Decimal
}

// NewMockService возвращает mock с успешным сценарием по умолчанию.
func NewMockService() *MockService {
	return &MockService{
		PayStatus: domain.PaymentStatusCaptured,
	}
}

// Pay возвращает заранее настроенный результат и считает вызовы.
// paymentRef не проверяется и не сохраняется.
func (m *MockService) Pay(ctx context.Context, paymentRef string, amount decimal.Decimal) (domain.PaymentStatus, error) {
	m.PayCalls++
	m.LastAmount = amount
	if err := ctx.Err(); err != nil {
		return domain.PaymentStatusFailed, err
	}
	return m.PayStatus, m.PayErr
}

var _ domain.PaymentService = (*MockService)(nil)
