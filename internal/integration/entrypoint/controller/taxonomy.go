package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/club-ledger/backend/internal/application/usecase/taxonomy"
	"github.com/club-ledger/backend/internal/domain/entity"
	"github.com/club-ledger/backend/internal/integration/entrypoint/dto"
)

// TaxonomyController handles category and section listing endpoints.
type TaxonomyController struct {
	listCategoriesUseCase *taxonomy.ListCategoriesUseCase
	listSectionsUseCase   *taxonomy.ListSectionsUseCase
}

// NewTaxonomyController creates a new taxonomy controller instance.
func NewTaxonomyController(
	listCategoriesUseCase *taxonomy.ListCategoriesUseCase,
	listSectionsUseCase *taxonomy.ListSectionsUseCase,
) *TaxonomyController {
	return &TaxonomyController{
		listCategoriesUseCase: listCategoriesUseCase,
		listSectionsUseCase:   listSectionsUseCase,
	}
}

// ListCategories handles GET /categories requests.
func (c *TaxonomyController) ListCategories(ctx *gin.Context) {
	input := taxonomy.ListCategoriesInput{
		Kind: entity.CategoryKind(ctx.Query("kind")),
	}

	output, err := c.listCategoriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// ListSections handles GET /sections requests.
func (c *TaxonomyController) ListSections(ctx *gin.Context) {
	output, err := c.listSectionsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSectionListResponse(output.Sections))
}
