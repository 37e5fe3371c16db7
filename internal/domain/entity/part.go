package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa un repuesto o pieza del catálogo de fábrica.
// UnitPrice es el precio de referencia, nunca negativo (lo valida el servidor).
type Part struct {
	PartID    string          `json:"part_id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at,omitzero"`
	UpdatedAt time.Time       `json:"updated_at,omitzero"`
}

// Key devuelve la clave primaria.
func (p Part) Key() string { return p.PartID }

// PartPatch campos modificables en una actualización parcial.
// Solo viajan los campos no nil.
type PartPatch struct {
	Name      *string          `json:"name,omitempty"`
	Type      *string          `json:"type,omitempty"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}
