// Package api exposes the table-ordering contracts over HTTP. The view
// layers (customer menu, kitchen display, admin dashboard) are thin clients
// of these routes.
package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"tablechef/internal/catalog"
	"tablechef/internal/monitoring"
	"tablechef/internal/orders"
	"tablechef/internal/review"
	"tablechef/internal/ws"
)

// Server wires the stores, the review client, and the kitchen feed into a
// gin router
type Server struct {
	Router   *gin.Engine
	Catalog  *catalog.Store
	Orders   *orders.Store
	Reviewer *review.Client
	Hub      *ws.Hub

	metrics *monitoring.Metrics

	mu       sync.Mutex
	sessions map[string]*review.Session // per-table review cache
}

// NewServer creates the API server and registers all routes
func NewServer(cat *catalog.Store, ord *orders.Store, reviewer *review.Client, hub *ws.Hub, metrics *monitoring.Metrics) *Server {
	s := &Server{
		Router:   gin.Default(),
		Catalog:  cat,
		Orders:   ord,
		Reviewer: reviewer,
		Hub:      hub,
		metrics:  metrics,
		sessions: make(map[string]*review.Session),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "tablechef API is running"})
	})

	s.Router.GET("/ws/kitchen", s.Hub.Handle)

	v1 := s.Router.Group("/api/v1")
	{
		// Menu catalog
		v1.GET("/menu", s.ListMenu)
		v1.POST("/menu", s.AddMenuItem)
		v1.PUT("/menu/:id", s.UpdateMenuItem)
		v1.DELETE("/menu/:id", s.DeleteMenuItem)

		// Cart
		v1.GET("/cart/:table", s.GetCart)
		v1.POST("/cart/:table/items", s.AddToCart)
		v1.DELETE("/cart/:table/items/:cartId", s.RemoveFromCart)
		v1.DELETE("/cart/:table", s.ClearCart)
		v1.POST("/cart/:table/verify", s.VerifyCart)

		// Orders
		v1.POST("/orders", s.SubmitOrder)
		v1.GET("/orders", s.ListOrders)
		v1.GET("/orders/pending", s.ListPendingOrders)
		v1.POST("/orders/:id/complete", s.CompleteOrder)

		// Admin analytics
		v1.GET("/analytics", s.GetAnalytics)
	}
}

// session returns the table's review session, creating it on first use
func (s *Server) session(table string) *review.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[table]
	if !ok {
		sess = review.NewSession(s.Reviewer)
		s.sessions[table] = sess
	}
	return sess
}

// resetSession drops the table's review cache, called when the cart goes away
func (s *Server) resetSession(table string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, table)
}
