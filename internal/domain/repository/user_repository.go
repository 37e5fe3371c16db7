package repository

import (
	"context"

	"github.com/jhoicas/factory-console/internal/domain/entity"
)

// UserFilter filtros del listado de usuarios; se envían como query params.
// Email filtra por subcadena (lo resuelve el servidor).
type UserFilter struct {
	Email       string
	Role        entity.Role
	WarehouseID string
}

// UserRepository define el puerto de acceso a datos para AppUser.
// La creación pertenece al proveedor de identidad (vía /auth/sync);
// aquí solo hay listado y actualización parcial.
type UserRepository interface {
	List(ctx context.Context, filter UserFilter) ([]entity.AppUser, error)
	Update(ctx context.Context, id string, patch entity.AppUserPatch) (*entity.AppUser, error)
}
