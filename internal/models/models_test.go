package models

import "testing"

func TestSignificantCustomization(t *testing.T) {
	tests := []struct {
		name string
		c    CustomizationOptions
		want bool
	}{
		{"defaults", CustomizationOptions{}, false},
		{"low oil only", CustomizationOptions{LowOil: true}, false},
		{"low salt", CustomizationOptions{LowSalt: true}, true},
		{"low sugar", CustomizationOptions{LowSugar: true}, true},
		{"spice above none", CustomizationOptions{SpiceLevel: SpiceMild}, true},
		{"allergy notes", CustomizationOptions{AllergyNotes: "peanut"}, true},
		{"special requests", CustomizationOptions{SpecialRequests: "sauce on side"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Significant(); got != tt.want {
				t.Errorf("Significant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrderTotalIgnoresCustomization(t *testing.T) {
	o := Order{
		Items: []OrderItem{
			{MenuItem: MenuItem{Price: 24}, Quantity: 2, Customization: CustomizationOptions{LowSalt: true}},
			{MenuItem: MenuItem{Price: 10}, Quantity: 1},
		},
	}

	if got, want := o.Total(), 58.0; got != want {
		t.Errorf("Total() = %v, want %v", got, want)
	}
}

func TestValidateMenuItem(t *testing.T) {
	if err := ValidateMenuItem(&MenuItem{Name: "", Price: 10}); err == nil {
		t.Error("empty name should be invalid")
	}
	if err := ValidateMenuItem(&MenuItem{Name: "Soup", Price: -5}); err == nil {
		t.Error("negative price should be invalid")
	}
	if err := ValidateMenuItem(&MenuItem{Name: "Bread", Price: 0}); err != nil {
		t.Errorf("zero price should be valid: %v", err)
	}
}

func TestSpiceLevelNames(t *testing.T) {
	names := map[SpiceLevel]string{
		SpiceNone:     "NONE",
		SpiceMild:     "MILD",
		SpiceMedium:   "MEDIUM",
		SpiceHot:      "HOT",
		SpiceExtraHot: "EXTRA_HOT",
	}
	for level, want := range names {
		if got := level.String(); got != want {
			t.Errorf("SpiceLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
}
