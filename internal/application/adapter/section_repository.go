// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/club-ledger/backend/internal/domain/entity"
)

// SectionRepository defines the interface for section persistence operations.
type SectionRepository interface {
	// FindAll retrieves all sections in stored order.
	FindAll(ctx context.Context) ([]*entity.Section, error)

	// FindByID retrieves a section by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Section, error)
}
