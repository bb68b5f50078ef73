package repositories

import (
	"errors"
	"fmt"

	"credit-tracker/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account id already exists")
)

const replaceBatchSize = 100

// accountRepository implements AccountRepositoryInterface on gorm
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// ListByUser returns the owner's accounts in display order
func (r *accountRepository) ListByUser(userID string) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("user_id = ?", userID).
		Order("position ASC").
		Order("created_at ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (r *accountRepository) GetByID(userID, id string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) CountByUser(userID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// Update writes every editable column, zero values included. Ownership,
// creation time and position are left alone.
func (r *accountRepository) Update(account *models.Account) error {
	result := r.db.Model(account).
		Where("user_id = ?", account.UserID).
		Select("*").
		Omit("id", "user_id", "created_at", "position").
		Updates(account)
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) DeleteAndReindex(userID, id string, remaining []models.Account) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Account{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete account: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAccountNotFound
		}

		for _, account := range remaining {
			if err := setPosition(tx, account); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *accountRepository) SwapPositions(a, b models.Account) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := setPosition(tx, a); err != nil {
			return err
		}
		return setPosition(tx, b)
	})
}

func (r *accountRepository) ReplaceAll(userID string, accounts []models.Account) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Account{}).Error; err != nil {
			return fmt.Errorf("failed to clear accounts: %w", err)
		}
		if len(accounts) == 0 {
			return nil
		}

		rows := models.CloneAccounts(accounts)
		for i := range rows {
			rows[i].UserID = userID
		}
		if err := tx.CreateInBatches(rows, replaceBatchSize).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAccountExists
			}
			return fmt.Errorf("failed to insert accounts: %w", err)
		}
		return nil
	})
}

func (r *accountRepository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Ping()
}

// setPosition bypasses the update hooks; a position write must not fail on
// unrelated field validation or bump updated_at.
func setPosition(tx *gorm.DB, account models.Account) error {
	result := tx.Model(&models.Account{}).
		Where("id = ? AND user_id = ?", account.ID, account.UserID).
		UpdateColumn("position", account.Position)
	if result.Error != nil {
		return fmt.Errorf("failed to set position of %s: %w", account.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
