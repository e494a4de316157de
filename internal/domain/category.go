package domain

type Category string

const (
	CategoryWork     Category = "work"
	CategoryStudy    Category = "study"
	CategoryExercise Category = "exercise"
	CategoryMeal     Category = "meal"
	CategorySleep    Category = "sleep"
	CategoryLeisure  Category = "leisure"
	CategoryCommute  Category = "commute"
	CategoryPersonal Category = "personal"
	CategoryOther    Category = "other"
)

// categoryOrder fixes the canonical iteration order for every aggregation
// and display path. Per-category arcs are laid out in this order.
var categoryOrder = []Category{
	CategoryWork,
	CategoryStudy,
	CategoryExercise,
	CategoryMeal,
	CategorySleep,
	CategoryLeisure,
	CategoryCommute,
	CategoryPersonal,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryWork:     "Work",
	CategoryStudy:    "Study",
	CategoryExercise: "Exercise",
	CategoryMeal:     "Meal",
	CategorySleep:    "Sleep",
	CategoryLeisure:  "Leisure",
	CategoryCommute:  "Commute",
	CategoryPersonal: "Personal",
	CategoryOther:    "Other",
}

var categoryColors = map[Category]string{
	CategoryWork:     "#3b82f6",
	CategoryStudy:    "#10b981",
	CategoryExercise: "#f59e0b",
	CategoryMeal:     "#f97316",
	CategorySleep:    "#6366f1",
	CategoryLeisure:  "#ec4899",
	CategoryCommute:  "#6b7280",
	CategoryPersonal: "#8b5cf6",
	CategoryOther:    "#64748b",
}

// Categories returns all categories in canonical order. The returned slice
// must not be mutated.
func Categories() []Category {
	return categoryOrder
}

// Valid reports whether c is a member of the closed category enumeration.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display label for the category, or the raw identifier
// for an unknown value.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// DefaultColor returns the registry hex color for the category. Unknown
// values fall back to the "other" color.
func (c Category) DefaultColor() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[CategoryOther]
}
