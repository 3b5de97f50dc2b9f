// Package taxonomy contains the category and section listing use cases.
package taxonomy

import (
	"context"
	"fmt"

	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/domain/entity"
	domainerror "github.com/club-ledger/backend/internal/domain/error"
)

// ListCategoriesInput represents the input for listing categories.
// An empty Kind lists every category.
type ListCategoriesInput struct {
	Kind entity.CategoryKind
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles listing categories.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo}
}

// Execute lists categories in stored order.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	var (
		categories []*entity.Category
		err        error
	)

	if input.Kind == "" {
		categories, err = uc.categoryRepo.FindAll(ctx)
	} else {
		if !input.Kind.IsValid() {
			return nil, domainerror.NewTaxonomyError(
				domainerror.ErrCodeInvalidCategoryKind,
				fmt.Sprintf("kind must be 'income' or 'expense', got %q", input.Kind),
				domainerror.ErrInvalidCategoryKind,
			)
		}
		categories, err = uc.categoryRepo.FindByKind(ctx, input.Kind)
	}
	if err != nil {
		return nil, domainerror.NewTaxonomyError(
			domainerror.ErrCodeTaxonomyInternalError,
			"failed to list categories",
			err,
		)
	}

	return &ListCategoriesOutput{Categories: categories}, nil
}
