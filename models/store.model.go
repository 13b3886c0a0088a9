package models

import (
	"gorm.io/gorm"
)

// Store represents one arcade/gaming venue (the tenant). Every customer,
// machine, staff account and transaction is scoped to a store.
type Store struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	Code      string `gorm:"size:36;uniqueIndex" json:"code"` // UUID issued at registration
	Address   string `gorm:"default:''" json:"address"`
	City      string `gorm:"default:''" json:"city"`
	State     string `gorm:"default:''" json:"state"`
	Phone     string `gorm:"default:''" json:"phone"`
	IsActive  bool   `gorm:"default:true" json:"isActive"` // super-admin can deactivate
	IsDeleted bool   `gorm:"default:false" json:"-"`
}

// StoreSetting holds per-store configuration. One row per store, created
// together with the store at owner signup.
type StoreSetting struct {
	gorm.Model
	StoreID uint `gorm:"not null;uniqueIndex" json:"storeId"`

	// Match credit configuration. A threshold of 0 means "unset": the
	// redemption threshold then defaults to 2x total credits per transaction.
	// The one-match-per-customer-per-day rule is not configurable; the unique
	// (customer_id, match_day) index enforces it for every store.
	MatchRedemptionThreshold float64 `gorm:"default:0" json:"matchRedemptionThreshold"`
	MatchExpiryDays          int     `gorm:"default:30" json:"matchExpiryDays"` // 0 = never auto-void

	Currency  string `gorm:"size:3;default:'USD'" json:"currency"`
	IsDeleted bool   `gorm:"default:false" json:"-"`

	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

func (StoreSetting) TableName() string {
	return "store_settings"
}
