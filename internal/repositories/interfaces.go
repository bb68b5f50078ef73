package repositories

import (
	"credit-tracker/internal/models"
)

// AccountRepositoryInterface defines the contract for account persistence.
// Every read and write is scoped to one owner.
type AccountRepositoryInterface interface {
	ListByUser(userID string) ([]models.Account, error)
	GetByID(userID, id string) (*models.Account, error)
	CountByUser(userID string) (int64, error)
	Create(account *models.Account) error
	Update(account *models.Account) error
	// DeleteAndReindex removes one account and rewrites the positions of the
	// remaining ones in a single transaction.
	DeleteAndReindex(userID, id string, remaining []models.Account) error
	// SwapPositions persists the position values of two accounts atomically
	SwapPositions(a, b models.Account) error
	// ReplaceAll drops every account of the owner and inserts the given ones
	ReplaceAll(userID string, accounts []models.Account) error
	Ping() error
}
