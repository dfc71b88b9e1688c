package supplier

import (
	"time"

	"github.com/google/uuid"
)

const (
	RegimeSimplified = "Simplified"
	RegimeCommon     = "Common"
	RegimeSpecial    = "Special"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Supplier struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	IDUser               uuid.UUID `gorm:"type:uuid;column:id_user;not null;index"`
	Name                 string    `gorm:"type:varchar(255);not null"`
	PersonType           string    `gorm:"type:varchar(20);not null"`
	TaxID                string    `gorm:"type:varchar(255);column:tax_id;not null"`
	DocumentType         string    `gorm:"type:varchar(20);not null"`
	IdentificationNumber string    `gorm:"type:varchar(255);not null"`
	BusinessReason       string    `gorm:"type:varchar(255);not null"`
	Email                string    `gorm:"type:varchar(255);not null"`
	ContactNumber        string    `gorm:"type:varchar(255);not null"`
	Address              string    `gorm:"type:varchar(255);not null"`
	City                 string    `gorm:"type:varchar(255);not null"`
	RegimeType           string    `gorm:"type:varchar(20);not null"`
	Status               string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (Supplier) TableName() string {
	return "suppliers"
}
