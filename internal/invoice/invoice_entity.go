package invoice

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"

	TypeElectronic = "electronica"
	TypeNomina     = "nomina"
	TypeExport     = "exportacion"
)

type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	IDUser        uuid.UUID `gorm:"type:uuid;column:id_user;not null;index"`
	IDClient      uuid.UUID `gorm:"type:uuid;column:id_client;not null;index"`
	InvoiceNumber string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	InvoiceType   string    `gorm:"type:varchar(20);not null"`
	CUFE          *string   `gorm:"type:varchar(100);column:cufe;uniqueIndex"`
	QRCode        *string   `gorm:"type:text;column:qr_code"`

	IssueDate      time.Time `gorm:"not null"`
	PaymentDueDate *time.Time

	ClientName  string `gorm:"type:varchar(100);not null"`
	ClientTaxID string `gorm:"type:varchar(50);column:client_tax_id;not null"`
	ClientEmail string `gorm:"type:varchar(100)"`

	Subtotal      float64 `gorm:"type:numeric(12,2);not null"`
	TotalDiscount float64 `gorm:"type:numeric(12,2);default:0"`
	TotalTaxes    float64 `gorm:"type:numeric(12,2);default:0"`
	Total         float64 `gorm:"type:numeric(12,2);not null"`

	TaxWithholding float64 `gorm:"type:numeric(12,2);default:0"`
	ICAWithholding float64 `gorm:"type:numeric(12,2);column:ica_withholding;default:0"`

	Status         string  `gorm:"type:varchar(20);not null;default:'draft'"`
	PaymentMethods *string `gorm:"type:text"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Invoice) TableName() string {
	return "invoices"
}

type InvoiceItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductCode string    `gorm:"type:varchar(50)"`
	ProductName string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Quantity    float64   `gorm:"type:numeric(10,2);not null"`
	UnitPrice   float64   `gorm:"type:numeric(12,2);not null"`
	// Discount and Tax are percentages applied to the line.
	Discount float64 `gorm:"type:numeric(5,2);default:0"`
	Tax      float64 `gorm:"type:numeric(5,2);default:0"`
	Total    float64 `gorm:"type:numeric(12,2);not null"`
}

func (InvoiceItem) TableName() string {
	return "invoice_items"
}

func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}
