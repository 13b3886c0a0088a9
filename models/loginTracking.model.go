package models

import (
	"time"

	"gorm.io/gorm"
)

// LoginTracking is an audit row recorded on every login attempt.
type LoginTracking struct {
	gorm.Model
	UserID    uint      `json:"user_id"`
	IPAddress string    `json:"ip_address"`
	Device    string    `json:"device"`
	Success   bool      `gorm:"default:false" json:"success"`
	Timestamp time.Time `json:"timestamp"`
	IsDeleted bool      `gorm:"default:false"`
}
