package pqrsf

import (
	"time"

	"github.com/google/uuid"
)

// PQRSF request categories (peticion, queja, reclamo, sugerencia,
// felicitacion).
const (
	TypePeticion     = "peticion"
	TypeQueja        = "queja"
	TypeReclamo      = "reclamo"
	TypeSugerencia   = "sugerencia"
	TypeFelicitacion = "felicitacion"

	StatusReceived  = "received"
	StatusProcessed = "processed"
)

type PQRSF struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PqrsfType string    `gorm:"type:varchar(50);not null"`
	Message   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'received'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PQRSF) TableName() string {
	return "pqrsf"
}
