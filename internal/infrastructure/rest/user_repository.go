package rest

import (
	"context"
	"net/url"

	"github.com/jhoicas/factory-console/internal/domain/entity"
	"github.com/jhoicas/factory-console/internal/domain/repository"
)

// UserRepository implementación REST del puerto repository.UserRepository.
// El alta de usuarios la hace el proveedor de identidad; ver SyncAppUser.
type UserRepository struct {
	c *Client
}

// NewUserRepository construye el repositorio.
func NewUserRepository(c *Client) *UserRepository {
	return &UserRepository{c: c}
}

// List trae los usuarios de negocio; el filtro viaja como query params
// (email por subcadena, rol exacto, almacén exacto).
func (r *UserRepository) List(ctx context.Context, filter repository.UserFilter) ([]entity.AppUser, error) {
	query := url.Values{}
	if filter.Email != "" {
		query.Set("email", filter.Email)
	}
	if filter.Role != "" {
		query.Set("role", string(filter.Role))
	}
	if filter.WarehouseID != "" {
		query.Set("warehouse_id", filter.WarehouseID)
	}
	var out []entity.AppUser
	if err := r.c.Get(ctx, "/users", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update modifica display_name, role o warehouse_id de un usuario.
func (r *UserRepository) Update(ctx context.Context, id string, patch entity.AppUserPatch) (*entity.AppUser, error) {
	var out entity.AppUser
	if err := r.c.Put(ctx, "/users/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SyncAppUser llamada única tras autenticarse: aprovisiona (o devuelve) el
// usuario de negocio asociado a la identidad del token vigente. El rol por
// defecto del alta lo decide el servidor (inventory_operator).
func (r *UserRepository) SyncAppUser(ctx context.Context) (*entity.AppUser, error) {
	var out entity.AppUser
	if err := r.c.Get(ctx, "/auth/sync", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
