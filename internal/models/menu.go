package models

import "fmt"

// MenuItem represents a dish on the menu
type MenuItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Image       string       `json:"image"`
	Category    string       `json:"category"`
	Tags        []DietaryTag `json:"tags"`
	Calories    int          `json:"calories,omitempty"`
}

// MenuCategory represents the category of a menu item
type MenuCategory string

const (
	// Menu categories
	MenuCategoryAppetizers MenuCategory = "Appetizers"
	MenuCategoryMains      MenuCategory = "Mains"
	MenuCategoryDesserts   MenuCategory = "Desserts"
)

// DietaryTag represents a catalog-level dietary label
type DietaryTag string

const (
	// Dietary tags
	TagVegan      DietaryTag = "Vegan"
	TagGlutenFree DietaryTag = "Gluten Free"
	TagDairyFree  DietaryTag = "Dairy Free"
	TagSpicy      DietaryTag = "Spicy"
	TagNutFree    DietaryTag = "Nut Free"
)

// ValidateMenuItem validates a menu item before it enters the catalog
func ValidateMenuItem(item *MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("menu item name is required")
	}
	if item.Price < 0 {
		return fmt.Errorf("menu item price must not be negative")
	}
	if item.Calories < 0 {
		return fmt.Errorf("menu item calories must not be negative")
	}
	return nil
}

// HasTag checks if the item carries a specific dietary tag
func (mi *MenuItem) HasTag(tag DietaryTag) bool {
	for _, t := range mi.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsInCategory checks if the item belongs to a specific category
func (mi *MenuItem) IsInCategory(category MenuCategory) bool {
	return mi.Category == string(category)
}
