package client

import (
	"time"

	"github.com/google/uuid"
)

const (
	PersonTypeNatural = "Natural"
	PersonTypeLegal   = "Legal"
	PersonTypeCompany = "Company"

	DocumentIDCard    = "id_card"
	DocumentForeignID = "foreign_id"
	DocumentOther     = "other"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Client struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	IDUser               uuid.UUID `gorm:"type:uuid;column:id_user;not null;index"`
	Name                 string    `gorm:"type:varchar(255);not null"`
	PersonType           string    `gorm:"type:varchar(20);not null"`
	TaxID                string    `gorm:"type:varchar(255);column:tax_id;not null"`
	DocumentType         string    `gorm:"type:varchar(20);not null"`
	IdentificationNumber string    `gorm:"type:varchar(255);not null"`
	Status               string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (Client) TableName() string {
	return "clients"
}
