package repository

import (
	"context"
	"errors"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/models"

	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *models.Account) error {
	return classify(r.db.WithContext(ctx).Create(a).Error)
}

// FindByID returns a zero-valued account when no record matches.
func (r *AccountRepository) FindByID(ctx context.Context, id uint) (models.Account, error) {
	var a models.Account
	err := r.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Account{}, nil
	}
	if err != nil {
		return models.Account{}, classify(err)
	}
	return a, nil
}

func (r *AccountRepository) FindByUser(ctx context.Context, userID uint) ([]models.Account, error) {
	var list []models.Account
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("creation_date ASC, id ASC").
		Find(&list).Error
	if err != nil {
		return nil, classify(err)
	}
	return list, nil
}
