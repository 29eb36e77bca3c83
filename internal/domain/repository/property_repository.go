package repository

import (
	"context"

	"ghargpt/internal/domain/entity"
)

// PropertyFilter narrows list queries. Zero-value fields mean "no condition";
// either budget bound may be set on its own for a half-open range.
type PropertyFilter struct {
	City         string
	PropertyType string
	MinBudget    *int64
	MaxBudget    *int64
	IsVerified   *bool
}

type PropertyRepository interface {
	List(ctx context.Context, filter PropertyFilter, skip, limit int) ([]*entity.Property, error)
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	Create(ctx context.Context, property *entity.Property) error
	Update(ctx context.Context, id string, update *entity.PropertyUpdate) (*entity.Property, error)
	Delete(ctx context.Context, id string) error
}
