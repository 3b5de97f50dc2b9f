package taxonomy

import (
	"context"

	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/domain/entity"
	domainerror "github.com/club-ledger/backend/internal/domain/error"
)

// ListSectionsOutput represents the output of listing sections.
type ListSectionsOutput struct {
	Sections []*entity.Section
}

// ListSectionsUseCase handles listing sections.
type ListSectionsUseCase struct {
	sectionRepo adapter.SectionRepository
}

// NewListSectionsUseCase creates a new ListSectionsUseCase instance.
func NewListSectionsUseCase(sectionRepo adapter.SectionRepository) *ListSectionsUseCase {
	return &ListSectionsUseCase{sectionRepo: sectionRepo}
}

// Execute lists sections in stored order.
func (uc *ListSectionsUseCase) Execute(ctx context.Context) (*ListSectionsOutput, error) {
	sections, err := uc.sectionRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewTaxonomyError(
			domainerror.ErrCodeTaxonomyInternalError,
			"failed to list sections",
			err,
		)
	}
	return &ListSectionsOutput{Sections: sections}, nil
}
