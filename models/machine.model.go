package models

import (
	"gorm.io/gorm"
)

// MachineStatus defines the operational state of a machine
type MachineStatus string

const (
	MachineStatusActive      MachineStatus = "active"
	MachineStatusMaintenance MachineStatus = "maintenance"
	MachineStatusRetired     MachineStatus = "retired"
)

// Machine is a game/amusement machine on a store's floor.
type Machine struct {
	gorm.Model
	StoreID      uint          `gorm:"not null;index" json:"storeId"`
	Name         string        `gorm:"not null" json:"name"`
	SerialNumber string        `gorm:"default:''" json:"serialNumber"`
	Category     string        `gorm:"default:''" json:"category"` // redemption, video, crane, etc.
	Status       MachineStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	IsDeleted    bool          `gorm:"default:false" json:"-"`

	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}
