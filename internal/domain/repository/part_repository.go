package repository

import (
	"context"

	"github.com/jhoicas/factory-console/internal/domain/entity"
)

// PartFilter filtros opcionales del listado de piezas (cero = sin filtro).
type PartFilter struct {
	Type string
}

// PartRepository define el puerto de acceso a datos para Part (DIP).
// La implementación concreta habla REST con el backend.
type PartRepository interface {
	List(ctx context.Context, filter PartFilter) ([]entity.Part, error)
	Create(ctx context.Context, part entity.Part) (*entity.Part, error)
	Update(ctx context.Context, partID string, patch entity.PartPatch) (*entity.Part, error)
	Delete(ctx context.Context, partID string) error
}
