package repository

import (
	"context"
	"errors"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// BalanceRow is one group of the balance aggregation: the grouped entity id
// and the sum of transaction values in the group.
type BalanceRow struct {
	GroupID uint            `gorm:"column:group_id"`
	Balance decimal.Decimal `gorm:"column:balance"`
}

func (r *TransactionRepository) Create(ctx context.Context, t *models.Transaction) error {
	return classify(r.db.WithContext(ctx).Create(t).Error)
}

// FindByID returns a zero-valued transaction when no record matches.
func (r *TransactionRepository) FindByID(ctx context.Context, id uint) (models.Transaction, error) {
	var t models.Transaction
	err := r.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Transaction{}, nil
	}
	if err != nil {
		return models.Transaction{}, classify(err)
	}
	return t, nil
}

func (r *TransactionRepository) FindByUser(ctx context.Context, userID uint) ([]models.Transaction, error) {
	var list []models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchase_date DESC, id DESC").
		Find(&list).Error
	if err != nil {
		return nil, classify(err)
	}
	return list, nil
}

// SumByAccount groups the user's transactions by account and sums values.
// Rows without an account are left out; no synthetic empty groups.
func (r *TransactionRepository) SumByAccount(ctx context.Context, f BalanceFilter) ([]BalanceRow, error) {
	return r.sumBy(ctx, "account_id", f)
}

// SumByFormPayment groups the user's transactions by form of payment and
// sums values.
func (r *TransactionRepository) SumByFormPayment(ctx context.Context, f BalanceFilter) ([]BalanceRow, error) {
	return r.sumBy(ctx, "form_payment_id", f)
}

func (r *TransactionRepository) sumBy(ctx context.Context, column string, f BalanceFilter) ([]BalanceRow, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select(column+" AS group_id, SUM(value) AS balance").
		Where("user_id = ?", f.UserID).
		Where(column + " <> 0")
	if f.InitialDate != nil {
		q = q.Where("purchase_date >= ?", *f.InitialDate)
	}
	if f.FinalDate != nil {
		q = q.Where("purchase_date <= ?", *f.FinalDate)
	}

	var rows []BalanceRow
	if err := q.Group(column).Order("group_id ASC").Scan(&rows).Error; err != nil {
		return nil, classify(err)
	}
	return rows, nil
}
