package cache

import (
	"sync"

	"credit-tracker/internal/models"
)

type memoryStore struct {
	mu       sync.RWMutex
	accounts []models.Account
}

// NewMemoryStore returns an in-process store, optionally seeded
func NewMemoryStore(seed ...models.Account) Store {
	return &memoryStore{accounts: models.CloneAccounts(seed)}
}

func (s *memoryStore) Read() ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneAccounts(s.accounts), nil
}

func (s *memoryStore) Write(accounts []models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = models.CloneAccounts(accounts)
	return nil
}

func (s *memoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = nil
	return nil
}
