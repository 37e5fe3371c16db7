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

// StaffScreen pantalla de plantilla: etiqueta el almacén asignado.
type StaffScreen struct {
	*Screen[entity.Staff]
	warehouses *refs.Resolver[entity.Warehouse]
}

// WarehouseLabel etiqueta legible del almacén ("W1 - Muelle 3"); claves sin
// mapear se devuelven tal cual.
func (s *StaffScreen) WarehouseLabel(warehouseID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warehouses.Resolve(warehouseID)
}

// NewStaffScreen construye la pantalla; carga la plantilla y los almacenes
// en paralelo al montar.
func NewStaffScreen(repo repository.StaffRepository, warehouseRepo repository.WarehouseRepository, notifier notify.Notifier, log *logger.Logger) *StaffScreen {
	warehouses := refs.NewResolver(refs.WarehouseFormat())

	cfg := ScreenConfig[entity.Staff]{
		Name: "staff",
		Fields: []form.Field{
			{Name: "staff_id", Label: "ID de empleado", Kind: form.KindText, Required: true, Key: true},
			{Name: "name", Label: "Nombre", Kind: form.KindText, Required: true},
			{Name: "gender", Label: "Sexo", Kind: form.KindChoice, Choices: []string{string(entity.GenderMale), string(entity.GenderFemale)}},
			{Name: "hire_date", Label: "Fecha de ingreso", Kind: form.KindDate, Required: true},
			{Name: "title", Label: "Cargo", Kind: form.KindText},
			{Name: "warehouse_id", Label: "Almacén", Kind: form.KindText},
		},
		List: repo.List,
		Refs: []RefLoader{
			Ref(warehouseRepo.List, warehouses.Set),
		},
		Create: func(ctx context.Context, f *form.Form) error {
			staff := entity.Staff{
				StaffID:     f.Get("staff_id"),
				Name:        f.Get("name"),
				Gender:      entity.Gender(f.Get("gender")),
				HireDate:    f.Date("hire_date"),
				Title:       f.Get("title"),
				WarehouseID: f.Get("warehouse_id"),
			}
			_, err := repo.Create(ctx, staff)
			return err
		},
		Update: func(ctx context.Context, row entity.Staff, f *form.Form) error {
			patch := entity.StaffPatch{
				Name:        changedString(row.Name, f.Get("name")),
				Gender:      changedGender(row.Gender, f.Get("gender")),
				HireDate:    changedDate(row.HireDate, f.Get("hire_date")),
				Title:       changedString(row.Title, f.Get("title")),
				WarehouseID: changedString(row.WarehouseID, f.Get("warehouse_id")),
			}
			_, err := repo.Update(ctx, row.StaffID, patch)
			return err
		},
		Remove: func(ctx context.Context, row entity.Staff) error {
			return repo.Delete(ctx, row.StaffID)
		},
		Fill: func(row entity.Staff, f *form.Form) {
			f.Populate(map[string]string{
				"staff_id":     row.StaffID,
				"name":         row.Name,
				"gender":       string(row.Gender),
				"hire_date":    row.HireDate.String(),
				"title":        row.Title,
				"warehouse_id": row.WarehouseID,
			})
		},
	}

	return &StaffScreen{
		Screen:     NewScreen(cfg, notifier, log),
		warehouses: warehouses,
	}
}
