package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt фиксирует результат оформления заказа в рамках сессии.
type Receipt struct {
	ID            string
	Customer      string
	Lines         []CartLine
	Total         decimal.Decimal
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
}

// ValidateInvariants сверяет итог чека с суммой строк.
func (r *Receipt) ValidateInvariants() []error {
	var errs []error

	if len(r.Lines) == 0 {
		errs = append(errs, ErrCartEmpty)
	}
	if !Total(r.Lines).Equal(r.Total) {
		errs = append(errs, ErrReceiptTotalMismatch)
	}

	return errs
}
