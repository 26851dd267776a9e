package models

import "strings"

// Category classifies a transaction. The type carries a fixed, well-known set
// of values plus an escape hatch: the advisory service may return a novel
// category string, and the model preserves it instead of forcing it into the
// closed set. Known() distinguishes the two cases.
type Category string

// The fixed category enumeration.
const (
	CategoryFood       Category = "Food"
	CategoryTransport  Category = "Transport"
	CategoryHousing    Category = "Housing"
	CategoryHealth     Category = "Health"
	CategoryLeisure    Category = "Leisure"
	CategoryEducation  Category = "Education"
	CategoryInvestment Category = "Investment"
	CategorySalary     Category = "Salary"
	CategoryOther      Category = "Other"
	CategoryShopping   Category = "Shopping"
	CategoryBills      Category = "Bills"
)

// KnownCategories returns the fixed enumeration in display order.
func KnownCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryHealth,
		CategoryLeisure,
		CategoryEducation,
		CategoryInvestment,
		CategorySalary,
		CategoryOther,
		CategoryShopping,
		CategoryBills,
	}
}

// Known reports whether the category belongs to the fixed enumeration.
func (c Category) Known() bool {
	for _, k := range KnownCategories() {
		if c == k {
			return true
		}
	}
	return false
}

// String returns the display name of the category.
func (c Category) String() string {
	return string(c)
}

// ParseCategory normalizes a category string. Known names match
// case-insensitively; a novel non-blank string is preserved as a free-form
// category; blank input maps to Other.
func ParseCategory(s string) Category {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return CategoryOther
	}
	for _, k := range KnownCategories() {
		if strings.EqualFold(trimmed, string(k)) {
			return k
		}
	}
	return Category(trimmed)
}
