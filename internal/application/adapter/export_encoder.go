// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"io"

	"github.com/club-ledger/backend/internal/domain/entity"
)

// ExportDocument describes the rows of one yearly export.
type ExportDocument struct {
	Year int
	Rows []*entity.TransactionDetail
}

// ExportEncoder renders an export document into a tabular file format.
type ExportEncoder interface {
	// Format returns the format key, e.g. "csv".
	Format() string

	// ContentType returns the MIME type of the encoded document.
	ContentType() string

	// Extension returns the file extension without the dot.
	Extension() string

	// Encode writes the whole document to w.
	Encode(w io.Writer, doc ExportDocument) error
}
