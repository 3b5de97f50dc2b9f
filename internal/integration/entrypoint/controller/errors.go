package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainerror "github.com/club-ledger/backend/internal/domain/error"
	"github.com/club-ledger/backend/internal/integration/entrypoint/dto"
)

// respondError maps coded domain errors to HTTP responses. Validation errors are 400,
// missing references are 422 and everything else is a generic 500.
func respondError(ctx *gin.Context, err error) {
	var coded domainerror.CodedError
	if !errors.As(err, &coded) {
		slog.ErrorContext(ctx.Request.Context(), "Unhandled error", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	switch domainerror.ClassOf(err) {
	case domainerror.ClassValidation:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: coded.Error(),
			Code:  coded.ErrorCode(),
		})
	case domainerror.ClassReference:
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: coded.Error(),
			Code:  coded.ErrorCode(),
		})
	default:
		slog.ErrorContext(ctx.Request.Context(), "Request failed", "code", coded.ErrorCode(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  coded.ErrorCode(),
		})
	}
}

// queryYear reads a required year parameter, or def when absent and def is non-zero.
func queryYear(ctx *gin.Context, def int) (int, error) {
	raw := strings.TrimSpace(ctx.Query("year"))
	if raw == "" {
		if def != 0 {
			return def, nil
		}
		return 0, domainerror.NewReportError(domainerror.ErrCodeInvalidYear, "year is required", domainerror.ErrInvalidYear)
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerror.NewReportError(domainerror.ErrCodeInvalidYear, fmt.Sprintf("year %q is not a number", raw), domainerror.ErrInvalidYear)
	}
	return year, nil
}

// queryMonth reads the month parameter, returning def when absent.
func queryMonth(ctx *gin.Context, def int) (int, error) {
	raw := strings.TrimSpace(ctx.Query("month"))
	if raw == "" {
		if def != 0 {
			return def, nil
		}
		return 0, domainerror.NewReportError(domainerror.ErrCodeInvalidMonth, "month is required", domainerror.ErrInvalidMonth)
	}
	month, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerror.NewReportError(domainerror.ErrCodeInvalidMonth, fmt.Sprintf("month %q is not a number", raw), domainerror.ErrInvalidMonth)
	}
	return month, nil
}

// querySectionID reads the optional section filter. Empty and "0" mean all sections.
func querySectionID(ctx *gin.Context) (*uint, error) {
	raw := strings.TrimSpace(ctx.Query("section_id"))
	if raw == "" || raw == "0" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidSectionFilter,
			fmt.Sprintf("section_id %q is not a valid id", raw),
			domainerror.ErrInvalidSectionFilter,
		)
	}
	sectionID := uint(id)
	return &sectionID, nil
}
