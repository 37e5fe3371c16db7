package entity

import "time"

// Gender sexo del empleado según el catálogo del backend.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Valid indica si el valor pertenece al catálogo (vacío cuenta como no informado).
func (g Gender) Valid() bool {
	return g == "" || g == GenderMale || g == GenderFemale
}

// Staff representa un empleado de la fábrica. WarehouseID es una referencia
// opcional al almacén asignado.
type Staff struct {
	StaffID     string    `json:"staff_id"`
	Name        string    `json:"name"`
	Gender      Gender    `json:"gender,omitempty"`
	HireDate    Date      `json:"hire_date"`
	Title       string    `json:"title,omitempty"`
	WarehouseID string    `json:"warehouse_id,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}

// Key devuelve la clave primaria.
func (s Staff) Key() string { return s.StaffID }

// StaffPatch campos modificables en una actualización parcial.
type StaffPatch struct {
	Name        *string `json:"name,omitempty"`
	Gender      *Gender `json:"gender,omitempty"`
	HireDate    *Date   `json:"hire_date,omitempty"`
	Title       *string `json:"title,omitempty"`
	WarehouseID *string `json:"warehouse_id,omitempty"`
}
