package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"restaurant-orders/cart"
	"restaurant-orders/config"
	"restaurant-orders/session"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the fixed menu.
func GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count": len(config.Catalog),
		"menu":  config.Catalog,
	})
}

// AddToCart adds a quantity of one menu item to the session cart.
// Repeated adds accumulate.
func AddToCart(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item."})
		return
	}
	qty, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be a positive integer."})
		return
	}

	s := session.Get(c)
	item, err := s.Cart.Add(config.Catalog, uint(itemID), qty)
	switch {
	case errors.Is(err, cart.ErrQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be a positive integer."})
		return
	case errors.Is(err, cart.ErrUnknownItem):
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid menu item."})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	if err := s.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Added %d x %s to cart.", qty, item.Name)})
}

// ViewCart returns the resolved cart contents and grand total.
func ViewCart(c *gin.Context) {
	s := session.Get(c)
	lines, total := s.Cart.Snapshot(config.Catalog)
	c.JSON(http.StatusOK, gin.H{
		"cart_items":  lines,
		"total_price": total,
	})
}

// UpdateCart replaces the cart with the submitted qty_{itemID} fields.
// Entries with a missing, unparseable or non-positive quantity are
// dropped.
func UpdateCart(c *gin.Context) {
	s := session.Get(c)

	updated := make(map[uint]int, len(s.Cart))
	for id := range s.Cart {
		raw := c.PostForm(fmt.Sprintf("qty_%d", id))
		qty, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		updated[id] = qty
	}
	s.Cart.Replace(updated)
	if err := s.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	lines, total := s.Cart.Snapshot(config.Catalog)
	c.JSON(http.StatusOK, gin.H{
		"message":     "Cart updated.",
		"cart_items":  lines,
		"total_price": total,
	})
}
