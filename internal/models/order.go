package models

import "time"

// OrderStatus represents the possible states of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// OrderItem represents a single cart line: a snapshot of the menu item plus
// the customer's customization. The MenuItem is copied by value so later
// catalog edits never rewrite what a historical order displayed.
type OrderItem struct {
	CartID        string               `json:"cartId"`
	MenuItem      MenuItem             `json:"menuItem"`
	Customization CustomizationOptions `json:"customization"`
	Quantity      int                  `json:"quantity"`
}

// LineTotal returns price times quantity for this item
func (oi OrderItem) LineTotal() float64 {
	return oi.MenuItem.Price * float64(oi.Quantity)
}

// AiAnalysisResult is the outcome of a dietary review for one order item
type AiAnalysisResult struct {
	Safe                 bool   `json:"safe"`
	Message              string `json:"message"`
	KitchenTicketSummary string `json:"kitchenTicketSummary,omitempty"`
}

// Order represents a submitted table order
type Order struct {
	ID              string                      `json:"id"`
	TableNumber     string                      `json:"tableNumber"`
	CustomerName    string                      `json:"customerName,omitempty"`
	Items           []OrderItem                 `json:"items"`
	Status          OrderStatus                 `json:"status"`
	Timestamp       time.Time                   `json:"timestamp"`
	AnalysisResults map[string]AiAnalysisResult `json:"analysisResults,omitempty"`
}

// Total returns the sum of price times quantity over all items, independent
// of any customization
func (o *Order) Total() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += item.LineTotal()
	}
	return total
}
