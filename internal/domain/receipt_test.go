package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

func makeReceipt() domain.Receipt {
	return domain.Receipt{
		ID:       "receipt-1",
		Customer: "John Doe",
		Lines: []domain.CartLine{
			{Position: 1, ProductID: 1, Name: "Pen", Quantity: 3, UnitPrice: decimal.RequireFromString("9.99"), LineTotal: decimal.RequireFromString("29.97")},
		},
		Total:         decimal.RequireFromString("29.97"),
		PaymentStatus: domain.PaymentStatusCaptured,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestReceiptValidateInvariants(t *testing.T) {
	receipt := makeReceipt()
	if errs := receipt.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}

	receipt.Total = decimal.RequireFromString("30")
	if errs := receipt.ValidateInvariants(); len(errs) != 1 {
		t.Fatalf("expected total mismatch, got %v", errs)
	}

	receipt.Lines = nil
	receipt.Total = decimal.Zero
	if errs := receipt.ValidateInvariants(); len(errs) != 1 {
		t.Fatalf("expected empty receipt error, got %v", errs)
	}
}
