package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/club-ledger/backend/internal/application/usecase/transaction"
	domainerror "github.com/club-ledger/backend/internal/domain/error"
	"github.com/club-ledger/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	recordUseCase     *transaction.RecordTransactionUseCase
	listRecentUseCase *transaction.ListRecentTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	recordUseCase *transaction.RecordTransactionUseCase,
	listRecentUseCase *transaction.ListRecentTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		recordUseCase:     recordUseCase,
		listRecentUseCase: listRecentUseCase,
	}
}

// Record handles POST /transactions requests (form or JSON body).
func (c *TransactionController) Record(ctx *gin.Context) {
	var req dto.RecordTransactionRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingTransactionFields),
			Details: err.Error(),
		})
		return
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), transaction.RecordTransactionInput{
		Date:        string(req.Date),
		CategoryID:  string(req.CategoryID),
		SectionID:   string(req.SectionID),
		Amount:      string(req.Amount),
		Description: string(req.Description),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// ListRecent handles GET /transactions/recent requests.
func (c *TransactionController) ListRecent(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be a non-negative integer",
			})
			return
		}
		limit = parsed
	}

	output, err := c.listRecentUseCase.Execute(ctx.Request.Context(), transaction.ListRecentTransactionsInput{Limit: limit})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}
