package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tablechef/internal/analytics"
	"tablechef/internal/models"
	"tablechef/internal/orders"
	"tablechef/internal/ws"
)

// Menu catalog handlers

func (s *Server) ListMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":      s.Catalog.List(),
		"categories": models.Categories(),
	})
}

func (s *Server) AddMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := s.Catalog.Add(item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.Hub.Broadcast(ws.Event{Type: ws.EventMenuChanged})
	c.JSON(http.StatusCreated, item)
}

func (s *Server) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.ID = c.Param("id")
	if err := models.ValidateMenuItem(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Unknown IDs are a silent no-op at the store level
	s.Catalog.Update(item)
	s.Hub.Broadcast(ws.Event{Type: ws.EventMenuChanged})
	c.JSON(http.StatusOK, item)
}

func (s *Server) DeleteMenuItem(c *gin.Context) {
	s.Catalog.Delete(c.Param("id"))
	s.Hub.Broadcast(ws.Event{Type: ws.EventMenuChanged})
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// Cart handlers

// AddToCartRequest is the payload for adding a customized item to a cart
type AddToCartRequest struct {
	ItemID        string                      `json:"itemId"`
	Customization models.CustomizationOptions `json:"customization"`
	Quantity      int                         `json:"quantity"`
}

func (s *Server) GetCart(c *gin.Context) {
	table := c.Param("table")
	cart := s.Orders.Cart(table)

	subtotal := 0.0
	for _, line := range cart {
		subtotal += line.LineTotal()
	}

	c.JSON(http.StatusOK, gin.H{"items": cart, "subtotal": subtotal})
}

func (s *Server) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := s.Catalog.Get(req.ItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	line, err := s.Orders.AddToCart(c.Param("table"), item, req.Customization, req.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.metrics.CartItemsAdded.Inc()
	c.JSON(http.StatusCreated, line)
}

func (s *Server) RemoveFromCart(c *gin.Context) {
	table := c.Param("table")
	cartID := c.Param("cartId")

	if err := s.Orders.RemoveFromCart(table, cartID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	s.session(table).Forget(cartID)
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

func (s *Server) ClearCart(c *gin.Context) {
	table := c.Param("table")
	s.Orders.ClearCart(table)
	s.resetSession(table)
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// VerifyCart runs the dietary review over the table's cart. Items without a
// significant customization are skipped; already-reviewed items come from the
// session cache.
func (s *Server) VerifyCart(c *gin.Context) {
	table := c.Param("table")
	cart := s.Orders.Cart(table)

	results := s.session(table).VerifyCart(c.Request.Context(), cart)
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// Order handlers

// SubmitOrderRequest is the payload for turning a cart into an order
type SubmitOrderRequest struct {
	TableNumber  string `json:"tableNumber"`
	CustomerName string `json:"customerName"`
}

func (s *Server) SubmitOrder(c *gin.Context) {
	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TableNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tableNumber is required"})
		return
	}

	// Attach whatever analysis the session has for items still in the cart;
	// unreviewed items are simply undocumented, not an error.
	sess := s.session(req.TableNumber)
	analysis := make(map[string]models.AiAnalysisResult)
	for _, line := range s.Orders.Cart(req.TableNumber) {
		if r, ok := sess.Result(line.CartID); ok {
			analysis[line.CartID] = r
		}
	}

	order, err := s.Orders.Submit(req.TableNumber, req.CustomerName, analysis)
	if err != nil {
		if errors.Is(err, orders.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.resetSession(req.TableNumber)
	s.metrics.OrdersSubmitted.Inc()
	s.metrics.RevenueTotal.Add(order.Total())
	s.metrics.PendingOrders.Set(float64(len(s.Orders.Pending())))
	s.Hub.Broadcast(ws.Event{Type: ws.EventOrderSubmitted, Order: &order})

	c.JSON(http.StatusCreated, order)
}

func (s *Server) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": s.Orders.All()})
}

func (s *Server) ListPendingOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": s.Orders.Pending()})
}

// CompleteOrder marks a pending order ready. Unknown or already-completed
// IDs are tolerated without error.
func (s *Server) CompleteOrder(c *gin.Context) {
	orderID := c.Param("id")
	changed := s.Orders.Complete(orderID)

	if changed {
		s.metrics.OrdersCompleted.Inc()
		s.metrics.PendingOrders.Set(float64(len(s.Orders.Pending())))
		if order, ok := s.Orders.Get(orderID); ok {
			s.Hub.Broadcast(ws.Event{Type: ws.EventOrderCompleted, Order: &order})
		}
	}

	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

// Analytics handler

func (s *Server) GetAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, analytics.Compute(s.Orders.All()))
}
