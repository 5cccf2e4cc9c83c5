// Package analytics derives dashboard statistics from the order list. All
// numbers are recomputed from scratch on every call; the order list in this
// domain is small enough that caching would buy nothing.
package analytics

import (
	"sort"

	"tablechef/internal/models"
)

// Trends counts order items (not orders) carrying each dietary preference
type Trends struct {
	LowSalt   int `json:"lowSalt"`
	LowSugar  int `json:"lowSugar"`
	LowOil    int `json:"lowOil"`
	Allergies int `json:"allergies"`
	Spicy     int `json:"spicy"`
}

// PopularItem is one entry of the top-sellers list
type PopularItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Stats is the full analytics snapshot shown on the admin dashboard
type Stats struct {
	TotalOrders   int           `json:"totalOrders"`
	TotalRevenue  float64       `json:"totalRevenue"`
	AvgOrderValue float64       `json:"avgOrderValue"`
	Trends        Trends        `json:"trends"`
	TopItems      []PopularItem `json:"topItems"`
}

const topItemCount = 5

// Compute aggregates the full order list into a Stats snapshot. An order's
// contribution to revenue is the sum of price times quantity over its items,
// independent of any customization.
func Compute(orders []models.Order) Stats {
	stats := Stats{TotalOrders: len(orders)}

	quantities := make(map[string]int)
	var names []string // first-encounter order, keeps ties stable

	for _, order := range orders {
		for _, item := range order.Items {
			stats.TotalRevenue += item.LineTotal()

			c := item.Customization
			if c.LowSalt {
				stats.Trends.LowSalt++
			}
			if c.LowSugar {
				stats.Trends.LowSugar++
			}
			if c.LowOil {
				stats.Trends.LowOil++
			}
			if c.AllergyNotes != "" {
				stats.Trends.Allergies++
			}
			if c.SpiceLevel > models.SpiceNone {
				stats.Trends.Spicy++
			}

			name := item.MenuItem.Name
			if _, seen := quantities[name]; !seen {
				names = append(names, name)
			}
			quantities[name] += item.Quantity
		}
	}

	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}

	stats.TopItems = topItems(names, quantities)
	return stats
}

// topItems ranks names by cumulative quantity, descending, ties broken by
// first-encountered insertion order.
func topItems(names []string, quantities map[string]int) []PopularItem {
	ranked := make([]PopularItem, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, PopularItem{Name: name, Quantity: quantities[name]})
	}

	// Stable sort keeps equal-quantity entries in encounter order
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})

	if len(ranked) > topItemCount {
		ranked = ranked[:topItemCount]
	}
	return ranked
}
