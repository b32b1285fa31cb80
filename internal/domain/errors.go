package domain

import "errors"

var (
	// ErrCatalogUnavailable — файл каталога не удалось открыть; ошибка фатальна для сессии.
	ErrCatalogUnavailable = errors.New("failed to open the products file")
	// Ошибка некорректной позиции товара в каталоге (< 1).
	ErrProductIDInvalid = errors.New("product id must be greater than zero")
	// Ошибка отрицательной цены товара.
	ErrProductPriceInvalid = errors.New("product price must be non-negative")
	// ErrProductNotFound возвращается, если товара с такой позицией нет в каталоге.
	ErrProductNotFound = errors.New("product not found")
	// ErrItemPositionInvalid — номер позиции корзины вне диапазона [1, size].
	ErrItemPositionInvalid = errors.New("invalid item number")
	// ErrQuantityInvalid — недопустимое количество товара.
	ErrQuantityInvalid = errors.New("invalid quantity")
	// ErrCartEmpty — операция требует непустой корзины.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrPaymentDeclined — платёж отклонён процессором.
	ErrPaymentDeclined = errors.New("payment declined")
	// Ошибка несоответствия итога чека сумме строк.
	ErrReceiptTotalMismatch = errors.New("receipt total does not match lines sum")
	// ErrReceiptExists — чек с таким ID уже сохранён.
	ErrReceiptExists = errors.New("receipt already exists")
)

// IsInputError сообщает, вызвана ли ошибка некорректным вводом пользователя.
// Такие ошибки не фатальны: операция прерывается, сессия продолжается.
func IsInputError(err error) bool {
	return errors.Is(err, ErrItemPositionInvalid) ||
		errors.Is(err, ErrQuantityInvalid) ||
		errors.Is(err, ErrProductNotFound)
}
