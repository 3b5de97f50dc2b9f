package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/club-ledger/backend/internal/domain/entity"
)

// FieldText holds the raw text of a request field. In JSON bodies it accepts a string or a
// number, so {"category_id": 3} and {"category_id": "3"} bind the same way.
type FieldText string

// UnmarshalJSON keeps strings as they are and numbers in their literal form.
func (f *FieldText) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FieldText(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a string or a number, got %s", data)
	}
	*f = FieldText(n.String())
	return nil
}

// RecordTransactionRequest accepts both form posts and JSON bodies. Values are kept as
// text so that parsing errors are reported with domain error codes.
type RecordTransactionRequest struct {
	Date        FieldText `form:"date" json:"date"`
	CategoryID  FieldText `form:"category_id" json:"category_id"`
	SectionID   FieldText `form:"section_id" json:"section_id"`
	Amount      FieldText `form:"amount" json:"amount"`
	Description FieldText `form:"description" json:"description"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           uint      `json:"id"`
	Date         string    `json:"date"`
	Amount       string    `json:"amount"`
	Description  string    `json:"description"`
	CategoryID   uint      `json:"category_id"`
	SectionID    uint      `json:"section_id"`
	CategoryName string    `json:"category_name,omitempty"`
	CategoryKind string    `json:"category_kind,omitempty"`
	SectionName  string    `json:"section_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TransactionListResponse represents a list of transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Date:        tx.Date.Format(entity.DateLayout),
		Amount:      tx.Amount.StringFixed(2),
		Description: tx.Description,
		CategoryID:  tx.CategoryID,
		SectionID:   tx.SectionID,
		CreatedAt:   tx.CreatedAt,
	}
}

// ToTransactionDetailResponse includes the joined category and section names.
func ToTransactionDetailResponse(d *entity.TransactionDetail) TransactionResponse {
	resp := ToTransactionResponse(d.Transaction)
	resp.CategoryName = d.CategoryName
	resp.CategoryKind = string(d.CategoryKind)
	resp.SectionName = d.SectionName
	return resp
}

// ToTransactionListResponse converts detailed rows to a TransactionListResponse DTO.
func ToTransactionListResponse(details []*entity.TransactionDetail) TransactionListResponse {
	items := make([]TransactionResponse, len(details))
	for i, d := range details {
		items[i] = ToTransactionDetailResponse(d)
	}
	return TransactionListResponse{Transactions: items}
}
