package handlers

import (
	"errors"
	"net/http"

	"restaurant-orders/config"
	"restaurant-orders/orders"
	"restaurant-orders/orderstate"
	"restaurant-orders/session"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `form:"name" binding:"required"`
	Address string `form:"address" binding:"required"`
	Phone   string `form:"phone" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
}

// OrderForm returns the cart contents the order form is filled against.
func OrderForm(c *gin.Context) {
	s := session.Get(c)
	lines, total := s.Cart.Snapshot(config.Catalog)
	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty."})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart_items":  lines,
		"total_price": total,
		"fields":      []string{"name", "address", "phone", "email"},
	})
}

// PlaceOrder checks out the session cart: one Order row per cart line,
// all sharing a fresh group id. On success the cart is cleared and the
// receipt parked in the session for a single view.
func PlaceOrder(c *gin.Context) {
	s := session.Get(c)

	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all required fields."})
		return
	}

	receipt, err := orders.Checkout(config.DB, config.Catalog, s.CustomerUsername, orders.Contact{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}, s.Cart)
	switch {
	case errors.Is(err, orders.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty."})
		return
	case errors.Is(err, orders.ErrContactRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all required fields."})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	s.Cart.Clear()
	s.Receipt = receipt
	if err := s.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Order placed successfully.",
		"order_group_id": receipt.OrderGroupID,
	})
}

// GetReceipt shows the transient receipt of the last checkout, exactly
// once, together with the estimated delivery time in the local zone.
func GetReceipt(c *gin.Context) {
	s := session.Get(c)
	receipt := s.Receipt
	if receipt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found."})
		return
	}

	rows, err := orders.FindGroup(config.DB, receipt.OrderGroupID)
	if err != nil || len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order data not found."})
		return
	}

	// one-shot: consumed on first view
	s.Receipt = nil
	if err := s.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"receipt":                 receipt,
		"order":                   rows[0],
		"estimated_delivery_time": orders.DeliveryEstimate(rows, config.LocalTZ),
	})
}

type trackRequest struct {
	OrderID string `form:"order_id" binding:"required"`
	Email   string `form:"email" binding:"required"`
}

// TrackOrderForm describes the tracking form.
func TrackOrderForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Track an order with its Order ID and Email.", "fields": []string{"order_id", "email"}})
}

// TrackOrder looks up an order group by group id and email. An empty
// result is reported, not an error.
func TrackOrder(c *gin.Context) {
	var req trackRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter both Order ID and Email."})
		return
	}

	rows, showCancel, err := orders.Track(config.DB, req.OrderID, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up orders"})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No orders found.", "orders": []struct{}{}, "show_cancel": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": rows, "show_cancel": showCancel})
}

// CancelOrderForm returns the order being cancelled and the fixed reason
// list, or rejects when the group is no longer cancellable.
func CancelOrderForm(c *gin.Context) {
	s := session.Get(c)
	groupID := c.Param("orderGroupID")

	rows, err := orders.GroupForCustomer(config.DB, groupID, s.CustomerUsername)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up orders"})
		return
	}
	if len(rows) == 0 || !orderstate.GroupCancellable(rows) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Order can't be cancelled."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": rows[0], "reasons": orderstate.CancellationReasons})
}

// CancelOrder cancels every row of the caller's order group with the
// selected reason. Ownership is the session identity.
func CancelOrder(c *gin.Context) {
	s := session.Get(c)
	groupID := c.Param("orderGroupID")

	err := orders.CancelGroup(config.DB, groupID, s.CustomerUsername, c.PostForm("reason"), c.PostForm("other_reason"))
	switch {
	case errors.Is(err, orders.ErrNotCancellable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Order can't be cancelled."})
		return
	case errors.Is(err, orderstate.ErrReasonRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a valid cancellation reason."})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully."})
}
