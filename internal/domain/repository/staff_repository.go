package repository

import (
	"context"

	"github.com/jhoicas/factory-console/internal/domain/entity"
)

// StaffRepository define el puerto de acceso a datos para Staff.
type StaffRepository interface {
	List(ctx context.Context) ([]entity.Staff, error)
	Create(ctx context.Context, staff entity.Staff) (*entity.Staff, error)
	Update(ctx context.Context, staffID string, patch entity.StaffPatch) (*entity.Staff, error)
	Delete(ctx context.Context, staffID string) error
}
