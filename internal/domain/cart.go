package domain

import "github.com/shopspring/decimal"

// CartEntry — одна позиция корзины: ссылка на товар каталога и количество.
// Позиции с одинаковым товаром не объединяются.
type CartEntry struct {
	// ProductID — позиция товара в каталоге; каталогом владеет CatalogRepository.
	ProductID int
	// Quantity всегда >= 1 для позиций, находящихся в корзине.
	Quantity int
}

// CartLine — позиция корзины, разрешённая через каталог, для отображения и чеков.
type CartLine struct {
	// Position — номер позиции в корзине, начиная с 1.
	Position  int
	ProductID int
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Cart — упорядоченный список позиций одного пользователя.
type Cart struct {
	entries []CartEntry
}

// NewCart возвращает пустую корзину.
func NewCart() *Cart {
	return &Cart{}
}

// Add добавляет новую позицию в конец корзины. Проверка количества — ответственность вызывающего.
func (c *Cart) Add(productID, qty int) CartEntry {
	entry := CartEntry{ProductID: productID, Quantity: qty}
	c.entries = append(c.entries, entry)
	return entry
}

// Len возвращает количество позиций.
func (c *Cart) Len() int {
	return len(c.entries)
}

// IsEmpty сообщает, пуста ли корзина.
func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Entries возвращает копию позиций в порядке добавления.
func (c *Cart) Entries() []CartEntry {
	result := make([]CartEntry, len(c.entries))
	copy(result, c.entries)
	return result
}

// Entry возвращает позицию по номеру (начиная с 1).
func (c *Cart) Entry(position int) (CartEntry, error) {
	if position < 1 || position > len(c.entries) {
		return CartEntry{}, ErrItemPositionInvalid
	}
	return c.entries[position-1], nil
}

// SetQuantity заменяет количество позиции; qty == 0 удаляет позицию.
// Возвращает true, если позиция была удалена. При ошибке корзина не меняется.
func (c *Cart) SetQuantity(position, qty int) (bool, error) {
	if position < 1 || position > len(c.entries) {
		return false, ErrItemPositionInvalid
	}
	if qty < 0 {
		return false, ErrQuantityInvalid
	}

	if qty == 0 {
		c.entries = append(c.entries[:position-1], c.entries[position:]...)
		return true, nil
	}
	c.entries[position-1].Quantity = qty
	return false, nil
}

// Clear удаляет все позиции; сама корзина остаётся пригодной к использованию.
func (c *Cart) Clear() {
	c.entries = nil
}

// ValidateInvariants проверяет, что все позиции имеют положительное количество.
func (c *Cart) ValidateInvariants() []error {
	var errs []error
	for _, entry := range c.entries {
		if entry.Quantity <= 0 {
			errs = append(errs, ErrQuantityInvalid)
		}
	}
	return errs
}

// Total суммирует стоимость строк.
func Total(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}
	return total
}

// User — единственный покупатель сессии и его корзина.
type User struct {
	Name string
	Cart *Cart
}

// NewUser создаёт пользователя с пустой корзиной.
func NewUser(name string) *User {
	return &User{Name: name, Cart: NewCart()}
}
