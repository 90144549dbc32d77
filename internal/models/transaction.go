package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a monetary event. Value is signed, negative meaning expense.
// AccountID is optional: rows without one never show up in account balances.
type Transaction struct {
	ID            uint            `gorm:"primaryKey"`
	Description   string          `gorm:"size:255;not null"`
	Value         decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Categories    StringList      `gorm:"type:text"`
	PurchaseDate  time.Time       `gorm:"index;not null"`
	FormPaymentID uint            `gorm:"index;not null"`
	AccountID     uint            `gorm:"index"`
	Installments  int
	UserID        uint `gorm:"index;not null"`
	Enabled       bool `gorm:"not null;default:true"`
	CreationDate  time.Time
}
