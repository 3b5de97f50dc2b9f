// Package model defines database models for persistence layer.
package model

import (
	"github.com/club-ledger/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Kind string `gorm:"type:varchar(10);not null;index"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:   m.ID,
		Name: m.Name,
		Kind: entity.CategoryKind(m.Kind),
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:   category.ID,
		Name: category.Name,
		Kind: string(category.Kind),
	}
}
