package domain

import "github.com/shopspring/decimal"

// Product описывает товар каталога. После загрузки не изменяется.
type Product struct {
	// ID — позиция товара в каталоге (начиная с 1), единственный идентификатор для пользователя.
	ID int
	// SKU — числовой идентификатор из файла каталога; для идентификации не используется.
	SKU int
	// Name — отображаемое название товара.
	Name string
	// Price — цена за единицу, неотрицательная.
	Price decimal.Decimal
}

// LineTotal возвращает стоимость qty единиц товара.
func (p Product) LineTotal(qty int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(qty)))
}

// Validate проверяет инварианты товара.
func (p *Product) Validate() []error {
	var errs []error

	if p.ID < 1 {
		errs = append(errs, ErrProductIDInvalid)
	}
	if p.Price.IsNegative() {
		errs = append(errs, ErrProductPriceInvalid)
	}

	return errs
}

// FormatMoney форматирует сумму для вывода: знак доллара и ровно два знака после точки.
func FormatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
