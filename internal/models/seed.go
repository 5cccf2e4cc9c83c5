package models

// SeedMenu returns the launch menu the catalog is populated with on startup
func SeedMenu() []MenuItem {
	return []MenuItem{
		{
			ID:          "1",
			Name:        "Truffle Mushroom Risotto",
			Description: "Creamy arborio rice with wild mushrooms, truffle oil, and parmesan crisp.",
			Price:       24,
			Category:    "Mains",
			Tags:        []DietaryTag{TagGlutenFree, TagVegan},
			Image:       "https://picsum.photos/seed/risotto/400/300",
			Calories:    650,
		},
		{
			ID:          "2",
			Name:        "Spicy Thai Basil Chicken",
			Description: "Minced chicken stir-fried with holy basil, chili, and garlic served with jasmine rice.",
			Price:       18,
			Category:    "Mains",
			Tags:        []DietaryTag{TagSpicy, TagDairyFree},
			Image:       "https://picsum.photos/seed/thai/400/300",
			Calories:    520,
		},
		{
			ID:          "3",
			Name:        "Grilled Salmon Bowl",
			Description: "Atlantic salmon with quinoa, roasted chickpeas, kale, and lemon tahini dressing.",
			Price:       22,
			Category:    "Mains",
			Tags:        []DietaryTag{TagGlutenFree, TagDairyFree},
			Image:       "https://picsum.photos/seed/salmon/400/300",
			Calories:    580,
		},
		{
			ID:          "4",
			Name:        "Crispy Calamari",
			Description: "Fried squid rings served with spicy marinara and lemon wedges.",
			Price:       14,
			Category:    "Appetizers",
			Tags:        []DietaryTag{TagDairyFree},
			Image:       "https://picsum.photos/seed/calamari/400/300",
			Calories:    410,
		},
		{
			ID:          "5",
			Name:        "Caprese Salad",
			Description: "Fresh mozzarella, vine-ripened tomatoes, and basil drizzled with balsamic glaze.",
			Price:       12,
			Category:    "Appetizers",
			Tags:        []DietaryTag{TagGlutenFree, TagVegan},
			Image:       "https://picsum.photos/seed/salad/400/300",
			Calories:    320,
		},
		{
			ID:          "6",
			Name:        "Chocolate Lava Cake",
			Description: "Warm chocolate cake with a molten center, served with vanilla bean ice cream.",
			Price:       10,
			Category:    "Desserts",
			Tags:        []DietaryTag{},
			Image:       "https://picsum.photos/seed/cake/400/300",
			Calories:    750,
		},
	}
}

// Categories lists the browse filters shown to customers
func Categories() []string {
	return []string{"All", "Appetizers", "Mains", "Desserts"}
}
