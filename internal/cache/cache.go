// Package cache holds the last-known-good copy of the account collection.
//
// The cache is a single slot that is always overwritten as a whole. A missing or
// unreadable slot reads as an empty collection.
package cache

import (
	"credit-tracker/internal/models"
)

// SlotName is the name of the single cache slot
const SlotName = "accounts"

// Store is a single-slot account snapshot
type Store interface {
	// Read returns the cached collection, or an empty one when nothing usable is cached
	Read() ([]models.Account, error)
	// Write replaces the cached collection
	Write(accounts []models.Account) error
	// Clear removes the cached collection
	Clear() error
}
