package models

import (
	"strings"

	"gorm.io/gorm"
)

// Customer is a venue customer registered at a store.
type Customer struct {
	gorm.Model
	StoreID      uint    `gorm:"not null;index" json:"storeId"`
	FirstName    string  `gorm:"not null" json:"firstName"`
	LastName     string  `gorm:"default:''" json:"lastName"`
	Mobile       string  `gorm:"default:''" json:"mobile"`
	Email        string  `gorm:"default:''" json:"email"`
	Notes        string  `gorm:"type:text" json:"notes"`
	BonusBalance float64 `gorm:"default:0" json:"bonusBalance"`
	IsDeleted    bool    `gorm:"default:false" json:"-"`

	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

// FullName returns "First Last" with single spacing regardless of which
// parts are present.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
