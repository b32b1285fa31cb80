package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// CatalogRepository — неизменяемый в течение сессии список товаров.
type CatalogRepository interface {
	// List возвращает товары в порядке каталога.
	List() []Product
	// Get возвращает товар по позиции (с 1) или ErrProductNotFound.
	Get(id int) (Product, error)
	// Len возвращает количество товаров.
	Len() int
}

// ReceiptRepository хранит чеки текущей сессии.
type ReceiptRepository interface {
	Create(receipt Receipt) error
	// ListByCustomer возвращает чеки покупателя, новые первыми; limit <= 0 — без ограничения.
	ListByCustomer(customer string, limit int) ([]Receipt, error)
}

// PaymentService описывает взаимодействие с платёжным процессором.
type PaymentService interface {
	// Pay списывает сумму; paymentRef — введённый пользователем идентификатор, не хранится.
	Pay(ctx context.Context, paymentRef string, amount decimal.Decimal) (PaymentStatus, error)
}
