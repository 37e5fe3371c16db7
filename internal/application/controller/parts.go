package controller

import (
	"context"

	"github.com/jhoicas/factory-console/internal/application/form"
	"github.com/jhoicas/factory-console/internal/application/notify"
	"github.com/jhoicas/factory-console/internal/domain/entity"
	"github.com/jhoicas/factory-console/internal/domain/repository"
	"github.com/jhoicas/factory-console/pkg/logger"
)

// NewPartsScreen pantalla de catálogo de piezas: sin referencias foráneas.
func NewPartsScreen(repo repository.PartRepository, notifier notify.Notifier, log *logger.Logger) *Screen[entity.Part] {
	cfg := ScreenConfig[entity.Part]{
		Name: "parts",
		Fields: []form.Field{
			{Name: "part_id", Label: "ID de pieza", Kind: form.KindText, Required: true, Key: true},
			{Name: "name", Label: "Nombre", Kind: form.KindText, Required: true},
			{Name: "type", Label: "Tipo", Kind: form.KindText, Required: true},
			{Name: "unit_price", Label: "Precio unitario", Kind: form.KindNumber, Required: true, Sign: form.SignNonNegative},
		},
		List: func(ctx context.Context) ([]entity.Part, error) {
			return repo.List(ctx, repository.PartFilter{})
		},
		Create: func(ctx context.Context, f *form.Form) error {
			part := entity.Part{
				PartID:    f.Get("part_id"),
				Name:      f.Get("name"),
				Type:      f.Get("type"),
				UnitPrice: f.Decimal("unit_price"),
			}
			_, err := repo.Create(ctx, part)
			return err
		},
		Update: func(ctx context.Context, row entity.Part, f *form.Form) error {
			patch := entity.PartPatch{
				Name:      changedString(row.Name, f.Get("name")),
				Type:      changedString(row.Type, f.Get("type")),
				UnitPrice: changedDecimal(row.UnitPrice, f.Get("unit_price")),
			}
			_, err := repo.Update(ctx, row.PartID, patch)
			return err
		},
		Remove: func(ctx context.Context, row entity.Part) error {
			return repo.Delete(ctx, row.PartID)
		},
		Fill: func(row entity.Part, f *form.Form) {
			f.Populate(map[string]string{
				"part_id":    row.PartID,
				"name":       row.Name,
				"type":       row.Type,
				"unit_price": row.UnitPrice.String(),
			})
		},
	}
	return NewScreen(cfg, notifier, log)
}
