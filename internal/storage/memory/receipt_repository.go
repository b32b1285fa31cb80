package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

// receiptRepositoryInMemory хранит чеки до завершения процесса.
type receiptRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Receipt
}

// NewReceiptRepository возвращает in-memory хранилище чеков сессии.
func NewReceiptRepository() domain.ReceiptRepository {
	return &receiptRepositoryInMemory{
		items: make(map[string]domain.Receipt),
	}
}

// Create сохраняет чек, если ID ещё не занят.
func (r *receiptRepositoryInMemory) Create(receipt domain.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[receipt.ID]; exists {
		return domain.ErrReceiptExists
	}
	lines := make([]domain.CartLine, len(receipt.Lines))
	copy(lines, receipt.Lines)
	receipt.Lines = lines
	r.items[receipt.ID] = receipt
	return nil
}

// ListByCustomer возвращает чеки покупателя, ограничивая выборку limit (если >0).
func (r *receiptRepositoryInMemory) ListByCustomer(customer string, limit int) ([]domain.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Receipt, 0, len(r.items))
	for _, receipt := range r.items {
		if receipt.Customer != customer {
			continue
		}
		result = append(result, receipt)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

var _ domain.ReceiptRepository = (*receiptRepositoryInMemory)(nil)
