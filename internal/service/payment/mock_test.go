package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

func TestMockService(t *testing.T) {
	mock := NewMockService()
	if mock == nil {
		t.Fatal("expected non-nil mock")
	}

	amount := decimal.RequireFromString("29.97")
	status, err := mock.Pay(context.Background(), "4111", amount)
	if err != nil {
		t.Fatalf("unexpected pay error: %v", err)
	}
	if status != domain.PaymentStatusCaptured {
		t.Fatalf("unexpected pay status: %s", status)
	}
	if !mock.LastAmount.Equal(amount) {
		t.Fatalf("unexpected amount: %s", mock.LastAmount)
	}

	mock.PayStatus = domain.PaymentStatusFailed
	mock.PayErr = errors.New("pay failed")

	if _, err := mock.Pay(context.Background(), "4111", amount); err == nil {
		t.Fatal("expected pay error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mock.PayErr = nil
	if _, err := mock.Pay(ctx, "4111", amount); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if mock.PayCalls != 3 {
		t.Fatalf("unexpected call counter: pay=%d", mock.PayCalls)
	}
}
