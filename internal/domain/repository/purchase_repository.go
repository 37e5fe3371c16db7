package repository

import (
	"context"

	"github.com/jhoicas/factory-console/internal/domain/entity"
)

// PurchaseRepository define el puerto de acceso a datos para Purchase.
type PurchaseRepository interface {
	List(ctx context.Context) ([]entity.Purchase, error)
	Create(ctx context.Context, purchase entity.Purchase) (*entity.Purchase, error)
	Update(ctx context.Context, purchaseID string, patch entity.PurchasePatch) (*entity.Purchase, error)
	Delete(ctx context.Context, purchaseID string) error
}
