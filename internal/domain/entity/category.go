// Package entity contains the core business objects of the project.
package entity

// Category classifies products and donations into the fixed marketplace taxonomy.
type Category string

const (
	// CategoryFood covers surplus catering and food items.
	CategoryFood Category = "food"
	// CategoryAttire covers clothing and costume items.
	CategoryAttire Category = "attire"
	// CategoryDecor covers decoration material.
	CategoryDecor Category = "decor"
	// CategoryLighting covers lighting equipment.
	CategoryLighting Category = "lighting"
	// CategoryFlowers covers floral arrangements.
	CategoryFlowers Category = "flowers"
	// CategoryOther covers everything else.
	CategoryOther Category = "other"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryAttire, CategoryDecor, CategoryLighting, CategoryFlowers, CategoryOther:
		return true
	default:
		return false
	}
}
