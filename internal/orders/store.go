// Package orders is the application state container for carts and submitted
// orders. All order mutations in the system go through this store; there is
// no persistence, state lives for the process lifetime.
package orders

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"tablechef/internal/models"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrNoSuchItem      = errors.New("cart item not found")
)

// Store holds one cart per table and the process-wide order list
type Store struct {
	mu     sync.RWMutex
	carts  map[string][]models.OrderItem
	orders []models.Order
}

// NewStore creates an empty order store
func NewStore() *Store {
	return &Store{
		carts: make(map[string][]models.OrderItem),
	}
}

// AddToCart appends a customized item to the table's cart and returns the
// created cart line. The menu item is stored by value so later catalog edits
// do not alter it.
func (s *Store) AddToCart(table string, item models.MenuItem, customization models.CustomizationOptions, quantity int) (models.OrderItem, error) {
	if quantity <= 0 {
		return models.OrderItem{}, ErrInvalidQuantity
	}

	line := models.OrderItem{
		CartID:        uuid.NewString(),
		MenuItem:      item,
		Customization: customization,
		Quantity:      quantity,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[table] = append(s.carts[table], line)
	return line, nil
}

// RemoveFromCart drops a cart line by ID. Unknown IDs are an error so the
// caller can tell the client nothing changed.
func (s *Store) RemoveFromCart(table, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[table]
	for i, line := range cart {
		if line.CartID == cartID {
			s.carts[table] = append(cart[:i], cart[i+1:]...)
			return nil
		}
	}
	return ErrNoSuchItem
}

// ClearCart empties the table's cart
func (s *Store) ClearCart(table string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, table)
}

// Cart returns a copy of the table's cart
func (s *Store) Cart(table string) []models.OrderItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := s.carts[table]
	out := make([]models.OrderItem, len(cart))
	copy(out, cart)
	return out
}

// Submit turns the table's cart into a pending order, attaches the analysis
// results keyed by cart ID, appends it to the order list, and empties the
// cart. This is the only place new orders are created. Submitting an empty
// cart is an error; the UI gates this but the store checks anyway.
func (s *Store) Submit(table, customerName string, analysis map[string]models.AiAnalysisResult) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[table]
	if len(cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	order := models.Order{
		ID:              uuid.NewString(),
		TableNumber:     table,
		CustomerName:    customerName,
		Items:           cart,
		Status:          models.OrderStatusPending,
		Timestamp:       time.Now(),
		AnalysisResults: analysis,
	}

	s.orders = append(s.orders, order)
	delete(s.carts, table)
	return order, nil
}

// Complete marks a pending order completed. The transition is one-directional
// and happens at most once; unknown or already-completed IDs are a no-op and
// the return value reports whether anything changed.
func (s *Store) Complete(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID && s.orders[i].Status == models.OrderStatusPending {
			s.orders[i].Status = models.OrderStatusCompleted
			return true
		}
	}
	return false
}

// Pending returns the orders the kitchen still has to make, oldest first
func (s *Store) Pending() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		if o.Status == models.OrderStatusPending {
			out = append(out, o)
		}
	}
	return out
}

// All returns every order ever submitted, in submission order
func (s *Store) All() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Get returns an order by ID
func (s *Store) Get(orderID string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}
