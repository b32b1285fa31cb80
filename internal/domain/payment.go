package domain

// PaymentStatus описывает результат обработки платежа.
type PaymentStatus string

const (
	// PaymentStatusCaptured — оплата принята.
	PaymentStatusCaptured PaymentStatus = "captured"
	// PaymentStatusFailed — процессор отклонил платёж.
	PaymentStatusFailed PaymentStatus = "failed"
)
