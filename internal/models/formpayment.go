package models

import "time"

// FormPayment is a payment method (e.g. a credit card) transactions reference.
type FormPayment struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:64;not null"`
	Type         string    `gorm:"size:32;not null"`
	UserID       uint      `gorm:"index;not null"`
	Enabled      bool      `gorm:"not null;default:true"`
	CreationDate time.Time `gorm:"index"`
}
