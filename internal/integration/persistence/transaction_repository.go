package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/domain/entity"
	domainerror "github.com/club-ledger/backend/internal/domain/error"
	"github.com/club-ledger/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// CreateChecked verifies the category and section exist and inserts the transaction,
// all inside one database transaction.
func (r *transactionRepository) CreateChecked(ctx context.Context, transaction *entity.Transaction) error {
	txModel := model.TransactionFromEntity(transaction)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.CategoryModel{}).Where("id = ?", txModel.CategoryID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check category: %w", err)
		}
		if count == 0 {
			return domainerror.ErrCategoryNotFound
		}

		if err := tx.Model(&model.SectionModel{}).Where("id = ?", txModel.SectionID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check section: %w", err)
		}
		if count == 0 {
			return domainerror.ErrSectionNotFound
		}

		return tx.Omit("Category", "Section").Create(txModel).Error
	})
	if err != nil {
		return err
	}

	transaction.ID = txModel.ID
	return nil
}

// SumByKind returns the sum of amounts per category kind, rounded to cents.
func (r *transactionRepository) SumByKind(ctx context.Context, filter adapter.TransactionFilter) ([]entity.KindTotal, error) {
	var results []struct {
		Kind  string          `gorm:"column:kind"`
		Total decimal.Decimal `gorm:"column:total"`
	}

	query := r.db.WithContext(ctx).
		Table("transactions t").
		Select("c.kind AS kind, COALESCE(SUM(t.amount), 0) AS total").
		Joins("INNER JOIN categories c ON t.category_id = c.id").
		Where("t.date >= ? AND t.date <= ?", dayBound(filter.StartDate), dayBound(filter.EndDate))
	if filter.SectionID != nil {
		query = query.Where("t.section_id = ?", *filter.SectionID)
	}

	if err := query.Group("c.kind").Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to sum transactions by kind: %w", err)
	}

	totals := make([]entity.KindTotal, len(results))
	for i, res := range results {
		totals[i] = entity.KindTotal{
			Kind:  entity.CategoryKind(res.Kind),
			Total: res.Total.Round(2),
		}
	}
	return totals, nil
}

// FindDetailed returns the filtered transactions with category and section names,
// ordered by date then id.
func (r *transactionRepository) FindDetailed(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionDetail, error) {
	query := r.detailQuery(ctx).
		Where("t.date >= ? AND t.date <= ?", dayBound(filter.StartDate), dayBound(filter.EndDate))
	if filter.SectionID != nil {
		query = query.Where("t.section_id = ?", *filter.SectionID)
	}

	var rows []detailRow
	if err := query.Order("t.date ASC").Order("t.id ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return toDetails(rows), nil
}

// FindRecent returns the latest transactions, newest date first.
func (r *transactionRepository) FindRecent(ctx context.Context, limit int) ([]*entity.TransactionDetail, error) {
	var rows []detailRow
	err := r.detailQuery(ctx).
		Order("t.date DESC").
		Order("t.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}
	return toDetails(rows), nil
}

type detailRow struct {
	ID           uint            `gorm:"column:id"`
	Date         time.Time       `gorm:"column:date"`
	Amount       decimal.Decimal `gorm:"column:amount"`
	Description  string          `gorm:"column:description"`
	CategoryID   uint            `gorm:"column:category_id"`
	SectionID    uint            `gorm:"column:section_id"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	CategoryName string          `gorm:"column:category_name"`
	CategoryKind string          `gorm:"column:category_kind"`
	SectionName  string          `gorm:"column:section_name"`
}

func (r *transactionRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("transactions t").
		Select(`t.id, t.date, t.amount, t.description, t.category_id, t.section_id, t.created_at,
			c.name AS category_name, c.kind AS category_kind, s.name AS section_name`).
		Joins("INNER JOIN categories c ON t.category_id = c.id").
		Joins("INNER JOIN sections s ON t.section_id = s.id")
}

func toDetails(rows []detailRow) []*entity.TransactionDetail {
	details := make([]*entity.TransactionDetail, len(rows))
	for i, row := range rows {
		details[i] = &entity.TransactionDetail{
			Transaction: &entity.Transaction{
				ID:          row.ID,
				Date:        entity.CalendarDay(row.Date),
				Amount:      row.Amount,
				Description: row.Description,
				CategoryID:  row.CategoryID,
				SectionID:   row.SectionID,
				CreatedAt:   row.CreatedAt,
			},
			CategoryName: row.CategoryName,
			CategoryKind: entity.CategoryKind(row.CategoryKind),
			SectionName:  row.SectionName,
		}
	}
	return details
}

// dayBound normalizes a filter bound to the stored representation of a calendar day.
func dayBound(t time.Time) time.Time {
	return entity.CalendarDay(t)
}
