package model

import (
	"github.com/club-ledger/backend/internal/domain/entity"
)

// SectionModel represents the sections table in the database.
type SectionModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for the SectionModel.
func (SectionModel) TableName() string {
	return "sections"
}

// ToEntity converts a SectionModel to a domain Section entity.
func (m *SectionModel) ToEntity() *entity.Section {
	return &entity.Section{
		ID:   m.ID,
		Name: m.Name,
	}
}

// SectionFromEntity creates a SectionModel from a domain Section entity.
func SectionFromEntity(section *entity.Section) *SectionModel {
	return &SectionModel{
		ID:   section.ID,
		Name: section.Name,
	}
}
