// Package export implements the CSV and XLSX transaction encoders.
package export

import "strings"

// Locale selects the header language of exported files.
type Locale string

const (
	LocaleGreek   Locale = "el"
	LocaleEnglish Locale = "en"
)

// ParseLocale returns the locale for s, falling back to Greek.
func ParseLocale(s string) Locale {
	if Locale(strings.ToLower(strings.TrimSpace(s))) == LocaleEnglish {
		return LocaleEnglish
	}
	return LocaleGreek
}

type headers struct {
	Date        string
	Category    string
	Section     string
	Description string
	Amount      string
}

var headersByLocale = map[Locale]headers{
	LocaleGreek: {
		Date:        "Ημερομηνία",
		Category:    "Κατηγορία",
		Section:     "Τμήμα",
		Description: "Περιγραφή",
		Amount:      "Ποσό",
	},
	LocaleEnglish: {
		Date:        "Date",
		Category:    "Category",
		Section:     "Section",
		Description: "Description",
		Amount:      "Amount",
	},
}

func headersFor(locale Locale) headers {
	if h, ok := headersByLocale[locale]; ok {
		return h
	}
	return headersByLocale[LocaleGreek]
}
