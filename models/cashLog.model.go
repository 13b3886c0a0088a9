package models

import (
	"time"

	"gorm.io/gorm"
)

// CashDirection marks money entering or leaving the store
type CashDirection string

const (
	CashDirectionIn  CashDirection = "IN"
	CashDirectionOut CashDirection = "OUT"
)

// Cash log categories
const (
	CashCategoryCollection = "collection" // emptied from a machine
	CashCategoryRefill     = "refill"     // change/float added to a machine
	CashCategoryPayout     = "payout"     // prize/redemption payout
	CashCategoryExpense    = "expense"
	CashCategoryOther      = "other"
)

// CashLog records a cash movement at a store, optionally tied to a machine.
type CashLog struct {
	gorm.Model
	StoreID    uint          `gorm:"not null;index" json:"storeId"`
	MachineID  *uint         `gorm:"default:NULL" json:"machineId"`
	LoggedByID *uint         `gorm:"default:NULL" json:"loggedById"`
	Direction  CashDirection `gorm:"type:varchar(5);not null" json:"direction"`
	Category   string        `gorm:"type:varchar(30);default:'other'" json:"category"`
	Amount     float64       `gorm:"not null" json:"amount"`
	Notes      string        `gorm:"type:text" json:"notes"`
	LogDate    time.Time     `gorm:"not null;index" json:"logDate"`
	IsDeleted  bool          `gorm:"default:false" json:"-"`

	Machine *Machine `gorm:"foreignKey:MachineID" json:"-"`
}

func (CashLog) TableName() string {
	return "cash_logs"
}
