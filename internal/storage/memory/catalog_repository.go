package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

// catalogRepositoryInMemory — неизменяемый каталог, загруженный при старте.
type catalogRepositoryInMemory struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewCatalogRepository возвращает каталог с переданными товарами.
// Позиции товаров должны совпадать с их порядком (ID == индекс+1).
func NewCatalogRepository(products []domain.Product) domain.CatalogRepository {
	items := make([]domain.Product, len(products))
	copy(items, products)
	return &catalogRepositoryInMemory{products: items}
}

// List возвращает копию товаров в порядке каталога.
func (r *catalogRepositoryInMemory) List() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, len(r.products))
	copy(result, r.products)
	return result
}

// Get возвращает товар по позиции или ErrProductNotFound.
func (r *catalogRepositoryInMemory) Get(id int) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id < 1 || id > len(r.products) {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return r.products[id-1], nil
}

// Len возвращает количество товаров.
func (r *catalogRepositoryInMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.products)
}

var _ domain.CatalogRepository = (*catalogRepositoryInMemory)(nil)
