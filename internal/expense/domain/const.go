package domain

// Category classifies an expense.
type Category string

// Expense categories.
const (
	CategoryGroceries  Category = "groceries"
	CategoryLeisure    Category = "leisure"
	CategoryElectronic Category = "electronic"
	CategoryUtilities  Category = "utilities"
	CategoryClothing   Category = "clothing"
	CategoryHealth     Category = "health"
	CategoryOthers     Category = "others"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryGroceries, CategoryLeisure, CategoryElectronic,
		CategoryUtilities, CategoryClothing, CategoryHealth, CategoryOthers:
		return true
	}
	return false
}

// Categories returns all known category values.
func Categories() []Category {
	return []Category{
		CategoryGroceries, CategoryLeisure, CategoryElectronic,
		CategoryUtilities, CategoryClothing, CategoryHealth, CategoryOthers,
	}
}
