package analytics

import (
	"math"
	"testing"

	"tablechef/internal/models"
)

func item(name string, price float64, qty int, c models.CustomizationOptions) models.OrderItem {
	return models.OrderItem{
		CartID:        name + "-cart",
		MenuItem:      models.MenuItem{Name: name, Price: price},
		Customization: c,
		Quantity:      qty,
	}
}

func order(items ...models.OrderItem) models.Order {
	return models.Order{
		ID:     "o",
		Items:  items,
		Status: models.OrderStatusPending,
	}
}

func TestComputeEmptyOrderList(t *testing.T) {
	stats := Compute(nil)

	if stats.TotalOrders != 0 {
		t.Errorf("TotalOrders = %d, want 0", stats.TotalOrders)
	}
	if stats.TotalRevenue != 0 {
		t.Errorf("TotalRevenue = %v, want 0", stats.TotalRevenue)
	}
	// No division-by-zero fault: average is defined as 0
	if stats.AvgOrderValue != 0 {
		t.Errorf("AvgOrderValue = %v, want 0", stats.AvgOrderValue)
	}
	if len(stats.TopItems) != 0 {
		t.Errorf("TopItems = %v, want empty", stats.TopItems)
	}
}

func TestComputeRevenueIsPriceTimesQuantity(t *testing.T) {
	o := order(
		item("Risotto", 24, 2, models.CustomizationOptions{LowSalt: true}),
		item("Lava Cake", 10, 1, models.CustomizationOptions{}),
	)

	stats := Compute([]models.Order{o})

	if stats.TotalOrders != 1 {
		t.Fatalf("TotalOrders = %d, want 1", stats.TotalOrders)
	}
	want := 24.0*2 + 10.0
	if math.Abs(stats.TotalRevenue-want) > 1e-9 {
		t.Errorf("TotalRevenue = %v, want %v", stats.TotalRevenue, want)
	}
	if math.Abs(stats.AvgOrderValue-want) > 1e-9 {
		t.Errorf("AvgOrderValue = %v, want %v", stats.AvgOrderValue, want)
	}
}

func TestComputeAveragesAcrossOrders(t *testing.T) {
	orders := []models.Order{
		order(item("Salad", 12, 1, models.CustomizationOptions{})),
		order(item("Calamari", 14, 2, models.CustomizationOptions{})),
	}

	stats := Compute(orders)

	if stats.TotalOrders != 2 {
		t.Fatalf("TotalOrders = %d, want 2", stats.TotalOrders)
	}
	want := (12.0 + 28.0) / 2
	if math.Abs(stats.AvgOrderValue-want) > 1e-9 {
		t.Errorf("AvgOrderValue = %v, want %v", stats.AvgOrderValue, want)
	}
}

func TestComputeTrendsCountPerItem(t *testing.T) {
	o := order(
		item("Risotto", 24, 1, models.CustomizationOptions{LowSalt: true, LowSugar: true}),
		item("Thai Chicken", 18, 1, models.CustomizationOptions{SpiceLevel: models.SpiceHot, AllergyNotes: "peanut"}),
		item("Salmon", 22, 1, models.CustomizationOptions{LowOil: true}),
	)

	stats := Compute([]models.Order{o})

	if stats.Trends.LowSalt != 1 {
		t.Errorf("LowSalt = %d, want 1", stats.Trends.LowSalt)
	}
	if stats.Trends.LowSugar != 1 {
		t.Errorf("LowSugar = %d, want 1", stats.Trends.LowSugar)
	}
	if stats.Trends.LowOil != 1 {
		t.Errorf("LowOil = %d, want 1", stats.Trends.LowOil)
	}
	if stats.Trends.Allergies != 1 {
		t.Errorf("Allergies = %d, want 1", stats.Trends.Allergies)
	}
	if stats.Trends.Spicy != 1 {
		t.Errorf("Spicy = %d, want 1", stats.Trends.Spicy)
	}
}

func TestPopularityAccumulatesAcrossOrders(t *testing.T) {
	orders := []models.Order{
		order(item("Risotto", 24, 3, models.CustomizationOptions{})),
		order(item("Risotto", 24, 5, models.CustomizationOptions{})),
	}

	stats := Compute(orders)

	if len(stats.TopItems) != 1 {
		t.Fatalf("TopItems = %v, want one entry", stats.TopItems)
	}
	if stats.TopItems[0].Name != "Risotto" || stats.TopItems[0].Quantity != 8 {
		t.Errorf("TopItems[0] = %+v, want Risotto/8", stats.TopItems[0])
	}
}

func TestPopularityTopFiveStableTies(t *testing.T) {
	o := order(
		item("A", 1, 2, models.CustomizationOptions{}),
		item("B", 1, 5, models.CustomizationOptions{}),
		item("C", 1, 2, models.CustomizationOptions{}), // ties with A, encountered later
		item("D", 1, 9, models.CustomizationOptions{}),
		item("E", 1, 1, models.CustomizationOptions{}),
		item("F", 1, 1, models.CustomizationOptions{}),
	)

	stats := Compute([]models.Order{o})

	if len(stats.TopItems) != 5 {
		t.Fatalf("len(TopItems) = %d, want 5", len(stats.TopItems))
	}

	wantNames := []string{"D", "B", "A", "C", "E"}
	for i, want := range wantNames {
		if stats.TopItems[i].Name != want {
			t.Errorf("TopItems[%d] = %s, want %s (full: %+v)", i, stats.TopItems[i].Name, want, stats.TopItems)
		}
	}
}
