// Package entity defines the core business entities for the domain layer.
package entity

// Section represents an organizational subdivision of the club (a team, the academies).
type Section struct {
	ID   uint
	Name string
}

// NewSection creates a new Section entity. The ID is assigned by the store.
func NewSection(name string) *Section {
	return &Section{Name: name}
}
