package dto

import (
	"github.com/club-ledger/backend/internal/domain/entity"
)

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// SectionResponse represents a single section in API responses.
type SectionResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SectionListResponse represents the response for listing sections.
type SectionListResponse struct {
	Sections []SectionResponse `json:"sections"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:   cat.ID,
		Name: cat.Name,
		Kind: string(cat.Kind),
	}
}

// ToCategoryListResponse converts a slice of categories to a CategoryListResponse DTO.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	items := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		items[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{Categories: items}
}

// ToSectionListResponse converts a slice of sections to a SectionListResponse DTO.
func ToSectionListResponse(sections []*entity.Section) SectionListResponse {
	items := make([]SectionResponse, len(sections))
	for i, s := range sections {
		items[i] = SectionResponse{ID: s.ID, Name: s.Name}
	}
	return SectionListResponse{Sections: items}
}
