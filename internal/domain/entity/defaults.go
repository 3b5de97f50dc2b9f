// Package entity defines the core business entities for the domain layer.
package entity

// DefaultCategories returns the categories seeded on first run, in insertion order.
func DefaultCategories() []*Category {
	return []*Category{
		NewCategory("Συνδρομές", CategoryKindIncome),
		NewCategory("Εισιτήρια Αγώνα", CategoryKindIncome),
		NewCategory("Χορηγίες", CategoryKindIncome),
		NewCategory("Άλλα Έσοδα", CategoryKindIncome),
		NewCategory("Προπονητές", CategoryKindExpense),
		NewCategory("Έξοδα Αγώνα", CategoryKindExpense),
		NewCategory("Μετακινήσεις", CategoryKindExpense),
		NewCategory("Εξοπλισμός", CategoryKindExpense),
		NewCategory("Άλλα Έξοδα", CategoryKindExpense),
	}
}

// DefaultSections returns the sections seeded on first run, in insertion order.
func DefaultSections() []*Section {
	return []*Section{
		NewSection("Ανδρών"),
		NewSection("Γυναικών"),
		NewSection("Ακαδημίες"),
	}
}
