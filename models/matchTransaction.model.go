package models

import (
	"time"

	"gorm.io/gorm"
)

// MatchStatus defines the lifecycle state of a match credit transaction
type MatchStatus string

const (
	MatchStatusActive   MatchStatus = "active"
	MatchStatusRedeemed MatchStatus = "redeemed"
	MatchStatusVoided   MatchStatus = "voided"
)

// MatchTransaction records a "match credit" promotion: the store matches a
// customer's cash deposit with extra playable credit, redeemable once the
// redemption threshold of play-through is reached.
//
// MatchedAmount and TotalCredits are computed at submission time and stored;
// they are never recomputed after creation. Redeemed and voided are terminal.
//
// MatchDay holds the creation calendar day (YYYY-MM-DD). The composite
// unique index on (customer_id, match_day) enforces the one-match-per-
// customer-per-day rule at the data layer, so two racing submissions cannot
// both insert.
type MatchTransaction struct {
	gorm.Model
	StoreID     uint  `gorm:"not null;index" json:"storeId"`
	CustomerID  uint  `gorm:"not null;uniqueIndex:idx_match_customer_day" json:"customerId"`
	MachineID   uint  `gorm:"not null" json:"machineId"`
	CreatedByID *uint `gorm:"default:NULL" json:"createdById"`

	ReceiptNumber string `gorm:"size:36;index" json:"receiptNumber"`

	InitialAmount       float64 `gorm:"not null" json:"initialAmount"`
	MatchPercentage     float64 `gorm:"not null;default:100" json:"matchPercentage"`
	MatchedAmount       float64 `gorm:"not null" json:"matchedAmount"`
	TotalCredits        float64 `gorm:"not null" json:"totalCredits"`
	RedemptionThreshold float64 `gorm:"not null" json:"redemptionThreshold"`

	Status   MatchStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`
	Notes    string      `gorm:"type:text" json:"notes"`
	MatchDay string      `gorm:"size:10;not null;uniqueIndex:idx_match_customer_day" json:"matchDay"`

	RedeemedAt *time.Time `gorm:"default:NULL" json:"redeemedAt"`

	// Relations - omit in JSON by default (only load when needed)
	Store     Store    `gorm:"foreignKey:StoreID" json:"-"`
	Customer  Customer `gorm:"foreignKey:CustomerID" json:"customer"`
	Machine   Machine  `gorm:"foreignKey:MachineID" json:"machine"`
	CreatedBy *User    `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
}

func (MatchTransaction) TableName() string {
	return "match_transactions"
}

// MatchDayFormat is the calendar-day layout stored in MatchDay.
const MatchDayFormat = "2006-01-02"
