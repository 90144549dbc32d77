package models

import "time"

// User represents an application user.
type User struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:64;not null"`
	Email          string `gorm:"size:128;uniqueIndex;not null"`
	PasswordDigest string `gorm:"size:128;not null"`
	Enabled        bool   `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
