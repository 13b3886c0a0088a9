package models

import (
	"time"

	"gorm.io/gorm"
)

// BonusType defines the type of bonus ledger entry
type BonusType string

const (
	BonusTypeEarn   BonusType = "EARN"
	BonusTypeRedeem BonusType = "REDEEM"
	BonusTypeAdjust BonusType = "ADJUST"
)

// BonusTransaction is one entry in a customer's bonus ledger. The customer's
// BonusBalance and the ledger row are written in the same DB transaction;
// BalanceBefore/BalanceAfter snapshot the balance around the entry.
type BonusTransaction struct {
	gorm.Model
	StoreID       uint      `gorm:"not null;index" json:"storeId"`
	CustomerID    uint      `gorm:"not null;index" json:"customerId"`
	CreatedByID   *uint     `gorm:"default:NULL" json:"createdById"`
	Type          BonusType `gorm:"type:varchar(20);not null" json:"type"`
	Amount        float64   `gorm:"not null" json:"amount"`
	BalanceBefore float64   `gorm:"not null" json:"balanceBefore"`
	BalanceAfter  float64   `gorm:"not null" json:"balanceAfter"`
	Reason        string    `gorm:"type:text" json:"reason"`
	EntryDate     time.Time `gorm:"not null" json:"entryDate"`
	IsDeleted     bool      `gorm:"default:false" json:"-"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

func (BonusTransaction) TableName() string {
	return "bonus_transactions"
}
