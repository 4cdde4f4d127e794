package middleware

import (
	"net/http"

	"restaurant-orders/session"

	"github.com/gin-gonic/gin"
)

// CustomerRequired gates routes on a logged-in customer session.
func CustomerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := session.Get(c)
		if !s.CustomerLoggedIn {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to continue."})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired gates routes on a logged-in admin session.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := session.Get(c)
		if !s.AdminLoggedIn {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin login required."})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CustomerUsername extracts the caller's customer identity.
func CustomerUsername(c *gin.Context) string {
	return session.Get(c).CustomerUsername
}
