package models

import "time"

// AuditLog records authenticated requests for auditing.
type AuditLog struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	RequestID string `gorm:"size:36"`
	Path      string `gorm:"size:255"`
	Method    string `gorm:"size:16"`
	IP        string `gorm:"size:64"`
	UserAgent string `gorm:"size:255"`
	CreatedAt time.Time
}
