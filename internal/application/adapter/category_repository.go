// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/club-ledger/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// FindAll retrieves all categories in stored order.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByKind retrieves the categories of one kind in stored order.
	FindByKind(ctx context.Context, kind entity.CategoryKind) ([]*entity.Category, error)

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Category, error)
}
