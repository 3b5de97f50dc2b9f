package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/club-ledger/backend/internal/domain/entity"
	"github.com/club-ledger/backend/internal/integration/persistence/model"
)

// SeedResult reports how many rows were inserted per table.
type SeedResult struct {
	Categories int
	Sections   int
}

// SeedDefaults inserts the default categories and sections. Each table is seeded only
// when it is empty, so running it twice is a no-op.
func SeedDefaults(ctx context.Context, db *gorm.DB) (*SeedResult, error) {
	result := &SeedResult{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count categories: %w", err)
		}
		if count == 0 {
			defaults := entity.DefaultCategories()
			models := make([]*model.CategoryModel, len(defaults))
			for i, c := range defaults {
				models[i] = model.CategoryFromEntity(c)
			}
			if err := tx.Create(&models).Error; err != nil {
				return fmt.Errorf("failed to seed categories: %w", err)
			}
			result.Categories = len(models)
		}

		if err := tx.Model(&model.SectionModel{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count sections: %w", err)
		}
		if count == 0 {
			defaults := entity.DefaultSections()
			models := make([]*model.SectionModel, len(defaults))
			for i, s := range defaults {
				models[i] = model.SectionFromEntity(s)
			}
			if err := tx.Create(&models).Error; err != nil {
				return fmt.Errorf("failed to seed sections: %w", err)
			}
			result.Sections = len(models)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Categories > 0 || result.Sections > 0 {
		slog.InfoContext(ctx, "Seeded default taxonomy",
			"categories", result.Categories,
			"sections", result.Sections,
		)
	}
	return result, nil
}
