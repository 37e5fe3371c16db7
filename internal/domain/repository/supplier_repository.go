package repository

import (
	"context"

	"github.com/jhoicas/factory-console/internal/domain/entity"
)

// SupplierRepository define el puerto de acceso a datos para Supplier.
type SupplierRepository interface {
	List(ctx context.Context) ([]entity.Supplier, error)
	Create(ctx context.Context, supplier entity.Supplier) (*entity.Supplier, error)
	Update(ctx context.Context, supplierID string, patch entity.SupplierPatch) (*entity.Supplier, error)
	Delete(ctx context.Context, supplierID string) error
}
