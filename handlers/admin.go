package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"restaurant-orders/config"
	"restaurant-orders/models"
	"restaurant-orders/orders"
	"restaurant-orders/orderstate"

	"github.com/gin-gonic/gin"
)

// AdminListOrders returns all orders, newest first — admin only.
func AdminListOrders(c *gin.Context) {
	rows, err := orders.List(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "orders": rows})
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("orderID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id."})
		return 0, false
	}
	return uint(id), true
}

// AdminUpdateStatusForm returns the order and the statuses it may be set to.
func AdminUpdateStatusForm(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	order, err := orders.FindOrder(config.DB, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "statuses": orderstate.Statuses})
}

// AdminUpdateStatus sets one row's status. Sibling rows of the group are
// untouched; only customer cancellation is group-wide.
func AdminUpdateStatus(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	status := models.OrderStatus(c.PostForm("status"))

	order, err := orders.UpdateStatus(config.DB, id, status)
	switch {
	case errors.Is(err, orders.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status selected."})
		return
	case errors.Is(err, orders.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found."})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Order #%d status updated to %s.", order.ID, status)})
}

// AdminUpdateTimeForm returns the order whose estimate is being edited.
func AdminUpdateTimeForm(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	order, err := orders.FindOrder(config.DB, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// AdminUpdateTime assigns the free-text estimated delivery time to one row.
func AdminUpdateTime(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := orders.UpdateEstimatedTime(config.DB, id, c.PostForm("estimated_time"))
	switch {
	case errors.Is(err, orders.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found."})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Estimated time updated for order #%d", order.ID)})
}
