// Package entity defines the core business entities for the domain layer.
package entity

// CategoryKind classifies a category as income or expense.
// The kind alone decides which aggregate bucket a transaction amount falls into.
type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindExpense CategoryKind = "expense"
)

// IsValid reports whether k is one of the known kinds.
func (k CategoryKind) IsValid() bool {
	return k == CategoryKindIncome || k == CategoryKindExpense
}

// Category represents a named income or expense classification.
type Category struct {
	ID   uint
	Name string
	Kind CategoryKind
}

// NewCategory creates a new Category entity. The ID is assigned by the store.
func NewCategory(name string, kind CategoryKind) *Category {
	return &Category{
		Name: name,
		Kind: kind,
	}
}
