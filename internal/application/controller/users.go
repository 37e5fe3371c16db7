package controller

import (
	"context"

	"github.com/jhoicas/factory-console/internal/application/form"
	"github.com/jhoicas/factory-console/internal/application/notify"
	"github.com/jhoicas/factory-console/internal/application/refs"
	"github.com/jhoicas/factory-console/internal/domain/entity"
	"github.com/jhoicas/factory-console/internal/domain/repository"
	"github.com/jhoicas/factory-console/pkg/logger"
)

// UsersScreen administración de usuarios. El alta la hace el proveedor de
// identidad (vía /auth/sync), así que la pantalla solo lista y edita
// display_name, rol y almacén; soporta filtro por email/rol/almacén.
type UsersScreen struct {
	*Screen[entity.AppUser]
	warehouses *refs.Resolver[entity.Warehouse]
	filter     repository.UserFilter
}

// WarehouseLabel etiqueta legible del almacén asignado.
func (s *UsersScreen) WarehouseLabel(warehouseID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warehouses.Resolve(warehouseID)
}

// SetFilter fija el filtro del listado; se aplica en el próximo Refresh.
func (s *UsersScreen) SetFilter(filter repository.UserFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
}

// Filter filtro vigente.
func (s *UsersScreen) Filter() repository.UserFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// NewUsersScreen construye la pantalla de usuarios (solo edición).
func NewUsersScreen(repo repository.UserRepository, warehouseRepo repository.WarehouseRepository, notifier notify.Notifier, log *logger.Logger) *UsersScreen {
	warehouses := refs.NewResolver(refs.WarehouseFormat())

	screen := &UsersScreen{warehouses: warehouses}

	roleChoices := []string{
		string(entity.RoleAdmin),
		string(entity.RoleWarehouseManager),
		string(entity.RolePurchaser),
		string(entity.RoleInventoryOperator),
	}

	cfg := ScreenConfig[entity.AppUser]{
		Name: "users",
		Fields: []form.Field{
			{Name: "id", Label: "ID", Kind: form.KindText, Required: true, Key: true},
			{Name: "display_name", Label: "Nombre visible", Kind: form.KindText},
			{Name: "role", Label: "Rol", Kind: form.KindChoice, Required: true, Choices: roleChoices},
			{Name: "warehouse_id", Label: "Almacén", Kind: form.KindText},
		},
		List: func(ctx context.Context) ([]entity.AppUser, error) {
			return repo.List(ctx, screen.Filter())
		},
		Refs: []RefLoader{
			Ref(warehouseRepo.List, warehouses.Set),
		},
		// Create nil: el aprovisionamiento es del proveedor de identidad.
		Update: func(ctx context.Context, row entity.AppUser, f *form.Form) error {
			patch := entity.AppUserPatch{
				DisplayName: changedString(row.DisplayName, f.Get("display_name")),
				Role:        changedRole(row.Role, f.Get("role")),
				WarehouseID: changedString(row.WarehouseID, f.Get("warehouse_id")),
			}
			_, err := repo.Update(ctx, row.ID, patch)
			return err
		},
		Fill: func(row entity.AppUser, f *form.Form) {
			f.Populate(map[string]string{
				"id":           row.ID,
				"display_name": row.DisplayName,
				"role":         string(row.Role),
				"warehouse_id": row.WarehouseID,
			})
		},
	}

	screen.Screen = NewScreen(cfg, notifier, log)
	return screen
}
