package controller

import (
	"context"

	"github.com/jhoicas/factory-console/internal/application/form"
	"github.com/jhoicas/factory-console/internal/application/notify"
	"github.com/jhoicas/factory-console/internal/domain/entity"
	"github.com/jhoicas/factory-console/internal/domain/repository"
	"github.com/jhoicas/factory-console/pkg/logger"
)

// NewSuppliersScreen pantalla de proveedores. Address y Phone son opcionales.
func NewSuppliersScreen(repo repository.SupplierRepository, notifier notify.Notifier, log *logger.Logger) *Screen[entity.Supplier] {
	cfg := ScreenConfig[entity.Supplier]{
		Name: "suppliers",
		Fields: []form.Field{
			{Name: "supplier_id", Label: "ID de proveedor", Kind: form.KindText, Required: true, Key: true},
			{Name: "name", Label: "Nombre", Kind: form.KindText, Required: true},
			{Name: "address", Label: "Dirección", Kind: form.KindText},
			{Name: "phone", Label: "Teléfono", Kind: form.KindText},
		},
		List: repo.List,
		Create: func(ctx context.Context, f *form.Form) error {
			supplier := entity.Supplier{
				SupplierID: f.Get("supplier_id"),
				Name:       f.Get("name"),
				Address:    f.Get("address"),
				Phone:      f.Get("phone"),
			}
			_, err := repo.Create(ctx, supplier)
			return err
		},
		Update: func(ctx context.Context, row entity.Supplier, f *form.Form) error {
			patch := entity.SupplierPatch{
				Name:    changedString(row.Name, f.Get("name")),
				Address: changedString(row.Address, f.Get("address")),
				Phone:   changedString(row.Phone, f.Get("phone")),
			}
			_, err := repo.Update(ctx, row.SupplierID, patch)
			return err
		},
		Remove: func(ctx context.Context, row entity.Supplier) error {
			return repo.Delete(ctx, row.SupplierID)
		},
		Fill: func(row entity.Supplier, f *form.Form) {
			f.Populate(map[string]string{
				"supplier_id": row.SupplierID,
				"name":        row.Name,
				"address":     row.Address,
				"phone":       row.Phone,
			})
		},
	}
	return NewScreen(cfg, notifier, log)
}
