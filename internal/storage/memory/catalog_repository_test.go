package memory_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
	"github.com/vladislavdragonenkov/shopcart/internal/storage/memory"
)

func newProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, SKU: 10, Name: "Pen", Price: decimal.RequireFromString("9.99")},
		{ID: 2, SKU: 20, Name: "Notebook", Price: decimal.RequireFromString("4.50")},
	}
}

func TestCatalogRepository_Get(t *testing.T) {
	repo := memory.NewCatalogRepository(newProducts())

	if repo.Len() != 2 {
		t.Fatalf("expected 2 products, got %d", repo.Len())
	}

	product, err := repo.Get(2)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if product.Name != "Notebook" {
		t.Fatalf("expected Notebook, got %s", product.Name)
	}

	for _, id := range []int{0, 3, -1} {
		if _, err := repo.Get(id); !errors.Is(err, domain.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound for id %d, got %v", id, err)
		}
	}
}

func TestCatalogRepository_Immutable(t *testing.T) {
	products := newProducts()
	repo := memory.NewCatalogRepository(products)

	products[0].Name = "changed"
	listed := repo.List()
	listed[1].Name = "changed"

	first, _ := repo.Get(1)
	second, _ := repo.Get(2)
	if first.Name != "Pen" || second.Name != "Notebook" {
		t.Fatalf("catalog was mutated from outside: %q, %q", first.Name, second.Name)
	}
}
