package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/club-ledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:text;not null;default:''"`
	CategoryID  uint            `gorm:"not null;index"`
	SectionID   uint            `gorm:"not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Section  *SectionModel  `gorm:"foreignKey:SectionID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		Date:        entity.CalendarDay(m.Date),
		Amount:      m.Amount,
		Description: m.Description,
		CategoryID:  m.CategoryID,
		SectionID:   m.SectionID,
		CreatedAt:   m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		Date:        entity.CalendarDay(transaction.Date),
		Amount:      transaction.Amount,
		Description: transaction.Description,
		CategoryID:  transaction.CategoryID,
		SectionID:   transaction.SectionID,
		CreatedAt:   transaction.CreatedAt,
	}
}

// AllModels lists every model managed by AutoMigrate, parents first.
func AllModels() []interface{} {
	return []interface{}{
		&CategoryModel{},
		&SectionModel{},
		&TransactionModel{},
	}
}
