// Package ordering keeps the user-defined account order dense.
//
// Every function returns a fresh slice and leaves its input untouched. After any
// successful operation the positions of a collection of N accounts are exactly
// 0..N-1 with no duplicates or gaps.
package ordering

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"credit-tracker/internal/models"
)

// Direction is the direction an account moves within the order
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

var (
	ErrNotFound         = errors.New("account not found")
	ErrCannotMove       = errors.New("cannot move account in that direction")
	ErrInvalidDirection = errors.New("direction must be 'up' or 'down'")
)

// ParseDirection parses "up" or "down", case-insensitively
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Up:
		return Up, nil
	case Down:
		return Down, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrInvalidDirection)
	}
}

// SortByPosition returns a copy of accounts sorted by position ascending
func SortByPosition(accounts []models.Account) []models.Account {
	out := models.CloneAccounts(accounts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// IsDense reports whether positions are exactly 0..N-1 with no duplicates
func IsDense(accounts []models.Account) bool {
	seen := make([]bool, len(accounts))
	for _, a := range accounts {
		if a.Position < 0 || a.Position >= len(accounts) || seen[a.Position] {
			return false
		}
		seen[a.Position] = true
	}
	return true
}

// Append returns accounts with acc added at the end of the order
func Append(accounts []models.Account, acc models.Account) []models.Account {
	out := make([]models.Account, 0, len(accounts)+1)
	out = append(out, models.CloneAccounts(accounts)...)
	acc = acc.Clone()
	acc.Position = len(accounts)
	return append(out, acc)
}

// Renumber returns a copy of accounts with positions set to their slice index
func Renumber(accounts []models.Account) []models.Account {
	out := models.CloneAccounts(accounts)
	for i := range out {
		out[i].Position = i
	}
	return out
}

// Remove returns accounts without the account identified by id, renumbered in
// their current relative order. An unknown id yields an unchanged copy.
func Remove(accounts []models.Account, id string) []models.Account {
	sorted := SortByPosition(accounts)
	idx := models.FindAccount(sorted, id)
	if idx < 0 {
		return models.CloneAccounts(accounts)
	}
	remaining := append(sorted[:idx:idx], sorted[idx+1:]...)
	return Renumber(remaining)
}

// Move swaps the account with its neighbor in the given direction, exchanging
// both slice slots and positions. Boundary moves and unknown ids return an
// unchanged copy of the input.
func Move(accounts []models.Account, id string, dir Direction) []models.Account {
	out := models.CloneAccounts(accounts)
	idx := models.FindAccount(out, id)
	if idx < 0 {
		return out
	}

	target, ok := neighborIndex(idx, len(out), dir)
	if !ok {
		return out
	}

	out[idx], out[target] = out[target], out[idx]
	out[idx].Position, out[target].Position = out[target].Position, out[idx].Position
	return out
}

// Swap locates the account and its neighbor by position order and returns both
// with their position values exchanged. Nothing else about either record changes.
func Swap(accounts []models.Account, id string, dir Direction) (current, neighbor models.Account, err error) {
	sorted := SortByPosition(accounts)
	idx := models.FindAccount(sorted, id)
	if idx < 0 {
		return models.Account{}, models.Account{}, ErrNotFound
	}

	target, ok := neighborIndex(idx, len(sorted), dir)
	if !ok {
		return models.Account{}, models.Account{}, ErrCannotMove
	}

	current, neighbor = sorted[idx], sorted[target]
	current.Position, neighbor.Position = neighbor.Position, current.Position
	return current, neighbor, nil
}

func neighborIndex(idx, n int, dir Direction) (int, bool) {
	switch dir {
	case Up:
		return idx - 1, idx > 0
	case Down:
		return idx + 1, idx < n-1
	default:
		return 0, false
	}
}
