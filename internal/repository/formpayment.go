package repository

import (
	"context"
	"errors"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/models"

	"gorm.io/gorm"
)

type FormPaymentRepository struct {
	db *gorm.DB
}

func NewFormPaymentRepository(db *gorm.DB) *FormPaymentRepository {
	return &FormPaymentRepository{db: db}
}

func (r *FormPaymentRepository) Create(ctx context.Context, f *models.FormPayment) error {
	return classify(r.db.WithContext(ctx).Create(f).Error)
}

// FindByID returns a zero-valued form of payment when no record matches.
func (r *FormPaymentRepository) FindByID(ctx context.Context, id uint) (models.FormPayment, error) {
	var f models.FormPayment
	err := r.db.WithContext(ctx).First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.FormPayment{}, nil
	}
	if err != nil {
		return models.FormPayment{}, classify(err)
	}
	return f, nil
}

func (r *FormPaymentRepository) FindByUser(ctx context.Context, userID uint) ([]models.FormPayment, error) {
	var list []models.FormPayment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("creation_date ASC, id ASC").
		Find(&list).Error
	if err != nil {
		return nil, classify(err)
	}
	return list, nil
}
