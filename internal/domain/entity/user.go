package entity

import "time"

// Role rol de negocio de un usuario de la consola.
type Role string

// Roles válidos para AppUser.
const (
	RoleAdmin             Role = "admin"
	RoleWarehouseManager  Role = "warehouse_manager"
	RolePurchaser         Role = "purchaser"
	RoleInventoryOperator Role = "inventory_operator"
)

// Valid indica si el rol pertenece al catálogo.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleWarehouseManager, RolePurchaser, RoleInventoryOperator:
		return true
	}
	return false
}

// AppUser representa el usuario de negocio asociado a una identidad externa.
// El proveedor de identidad es dueño de la creación (vía /auth/sync); aquí
// solo son mutables DisplayName, Role y WarehouseID.
type AppUser struct {
	ID          string    `json:"id"`
	AuthUserID  string    `json:"auth_user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	Role        Role      `json:"role"`
	WarehouseID string    `json:"warehouse_id,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// Key devuelve la clave primaria.
func (u AppUser) Key() string { return u.ID }

// AppUserPatch campos mutables localmente de un AppUser.
type AppUserPatch struct {
	DisplayName *string `json:"display_name,omitempty"`
	Role        *Role   `json:"role,omitempty"`
	WarehouseID *string `json:"warehouse_id,omitempty"`
}
