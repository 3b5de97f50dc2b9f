package taxonomy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/club-ledger/backend/internal/domain/entity"
	domainerror "github.com/club-ledger/backend/internal/domain/error"
)

type fakeCategoryRepo struct {
	err error
}

func (r fakeCategoryRepo) FindAll(context.Context) ([]*entity.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	return entity.DefaultCategories(), nil
}

func (r fakeCategoryRepo) FindByKind(ctx context.Context, kind entity.CategoryKind) ([]*entity.Category, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []*entity.Category
	for _, c := range all {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r fakeCategoryRepo) FindByID(context.Context, uint) (*entity.Category, error) {
	return nil, domainerror.ErrCategoryNotFound
}

type fakeSectionRepo struct{}

func (fakeSectionRepo) FindAll(context.Context) ([]*entity.Section, error) {
	return entity.DefaultSections(), nil
}

func (fakeSectionRepo) FindByID(context.Context, uint) (*entity.Section, error) {
	return nil, domainerror.ErrSectionNotFound
}

func TestListCategories(t *testing.T) {
	uc := NewListCategoriesUseCase(fakeCategoryRepo{})
	ctx := context.Background()

	tests := []struct {
		kind entity.CategoryKind
		want int
	}{
		{"", 9},
		{entity.CategoryKindIncome, 4},
		{entity.CategoryKindExpense, 5},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			out, err := uc.Execute(ctx, ListCategoriesInput{Kind: tt.kind})
			require.NoError(t, err)
			assert.Len(t, out.Categories, tt.want)
		})
	}

	_, err := uc.Execute(ctx, ListCategoriesInput{Kind: "transfer"})
	assert.ErrorIs(t, err, domainerror.ErrInvalidCategoryKind)
	assert.True(t, domainerror.IsValidationError(err))
}

func TestListCategories_StoreError(t *testing.T) {
	_, err := NewListCategoriesUseCase(fakeCategoryRepo{err: errors.New("boom")}).Execute(context.Background(), ListCategoriesInput{})
	var taxErr *domainerror.TaxonomyError
	require.ErrorAs(t, err, &taxErr)
	assert.Equal(t, domainerror.ErrCodeTaxonomyInternalError, taxErr.Code)
}

func TestListSections(t *testing.T) {
	out, err := NewListSectionsUseCase(fakeSectionRepo{}).Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, out.Sections, 3)
}
