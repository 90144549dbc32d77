// Package repository wraps persistence calls and classifies driver errors
// into the business error taxonomy.
package repository

import (
	"errors"
	"time"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/apperr"

	"gorm.io/gorm"
)

// BalanceFilter narrows a grouped-sum query to one user and an optional
// purchase-date window. Nil bounds leave the window open.
type BalanceFilter struct {
	UserID      uint
	InitialDate *time.Time
	FinalDate   *time.Time
}

func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrInvalidData),
		errors.Is(err, gorm.ErrInvalidValue),
		errors.Is(err, gorm.ErrInvalidField):
		return apperr.StorageInvalid(err)
	default:
		return apperr.Storage(err)
	}
}
