package review

import (
	"context"
	"sync"

	"tablechef/internal/models"
)

// Session caches analysis results per cart ID for the lifetime of a cart so
// repeated verification never re-queries an already-analyzed item.
type Session struct {
	client *Client

	mu      sync.Mutex
	results map[string]models.AiAnalysisResult
}

// NewSession creates a review session backed by the given client
func NewSession(client *Client) *Session {
	return &Session{
		client:  client,
		results: make(map[string]models.AiAnalysisResult),
	}
}

// VerifyCart reviews every item in the cart that has a significant
// customization, one at a time. Items with no significant customization are
// skipped and receive no result. Cached results are reused verbatim.
func (s *Session) VerifyCart(ctx context.Context, cart []models.OrderItem) map[string]models.AiAnalysisResult {
	out := make(map[string]models.AiAnalysisResult)

	for _, item := range cart {
		if !item.Customization.Significant() {
			continue
		}

		s.mu.Lock()
		cached, ok := s.results[item.CartID]
		s.mu.Unlock()
		if ok {
			out[item.CartID] = cached
			continue
		}

		result := s.client.ReviewOrderItem(ctx, item.MenuItem, item.Customization)

		s.mu.Lock()
		s.results[item.CartID] = result
		s.mu.Unlock()
		out[item.CartID] = result
	}

	return out
}

// Result returns the cached analysis for a cart ID, if any
func (s *Session) Result(cartID string) (models.AiAnalysisResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.results[cartID]
	return r, ok
}

// Forget drops the cached result for a cart ID, used when an item is removed
// from the cart
func (s *Session) Forget(cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.results, cartID)
}

// Reset clears the session cache, used when a cart is cleared or submitted
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = make(map[string]models.AiAnalysisResult)
}
