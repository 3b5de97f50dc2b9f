package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/domain/entity"
	domainerror "github.com/club-ledger/backend/internal/domain/error"
	"github.com/club-ledger/backend/internal/integration/persistence/model"
)

// sectionRepository implements the adapter.SectionRepository interface.
type sectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository creates a new section repository instance.
func NewSectionRepository(db *gorm.DB) adapter.SectionRepository {
	return &sectionRepository{
		db: db,
	}
}

// FindAll retrieves all sections in stored order.
func (r *sectionRepository) FindAll(ctx context.Context) ([]*entity.Section, error) {
	var sectionModels []model.SectionModel
	result := r.db.WithContext(ctx).Order("id ASC").Find(&sectionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sections := make([]*entity.Section, len(sectionModels))
	for i := range sectionModels {
		sections[i] = sectionModels[i].ToEntity()
	}
	return sections, nil
}

// FindByID retrieves a section by its ID.
func (r *sectionRepository) FindByID(ctx context.Context, id uint) (*entity.Section, error) {
	var sectionModel model.SectionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&sectionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSectionNotFound
		}
		return nil, result.Error
	}
	return sectionModel.ToEntity(), nil
}
