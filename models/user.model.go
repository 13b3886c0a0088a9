package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleOwner      = "OWNER"
	RoleStaff      = "STAFF"
	RoleSuperAdmin = "SUPER-ADMIN"
)

// User is a staff or owner account. SUPER-ADMIN accounts have StoreID 0 and
// operate across stores; every other account belongs to exactly one store.
type User struct {
	gorm.Model
	StoreID             uint       `gorm:"index;default:0" json:"storeId"`
	Name                string     `gorm:"default:''" json:"name"`
	Email               string     `gorm:"unique;not null" json:"email"`
	Mobile              string     `gorm:"default:''" json:"mobile"`
	Role                string     `gorm:"default:'STAFF'" json:"role"` // OWNER, STAFF, SUPER-ADMIN
	Password            string     `gorm:"not null" json:"-"`
	LastLogin           time.Time  `gorm:"default:NULL" json:"lastLogin"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LastFailedLogin     *time.Time `json:"-"`
	IsBlocked           bool       `gorm:"default:false" json:"isBlocked"`
	BlockedUntil        *time.Time `json:"-"`
	IsDeleted           bool       `gorm:"default:false" json:"-"`

	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}
