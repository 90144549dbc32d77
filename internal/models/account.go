package models

import "time"

// Account is a named financial container owned by a single user.
type Account struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:64;not null"`
	Type         string    `gorm:"size:32;not null"`
	UserID       uint      `gorm:"index;not null"`
	Enabled      bool      `gorm:"not null;default:true"`
	CreationDate time.Time `gorm:"index"`
}
