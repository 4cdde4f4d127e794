package handlers

import (
	"net/http"
	"strings"

	"restaurant-orders/config"
	"restaurant-orders/models"
	"restaurant-orders/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type credentialsRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// CustomerSignupForm describes the signup form.
func CustomerSignupForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Sign up with a username and password.", "fields": []string{"username", "password"}})
}

// CustomerSignup creates a new customer account.
func CustomerSignup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required."})
		return
	}

	var existing models.User
	if result := config.DB.Where("username = ?", username).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists."})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{Username: username, PasswordHash: string(hash)}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Signup successful! Please login."})
}

// CustomerLoginForm describes the login form.
func CustomerLoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Login with your username and password.", "fields": []string{"username", "password"}})
}

// CustomerLogin authenticates a customer and marks the session.
func CustomerLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	username := strings.TrimSpace(req.Username)

	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password."})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password."})
		return
	}

	s := session.Get(c)
	s.CustomerLoggedIn = true
	s.CustomerUsername = username
	if err := s.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Welcome back, " + username + "!"})
}

// CustomerLogout clears the customer identity. An admin identity held in
// the same session survives.
func CustomerLogout(c *gin.Context) {
	s := session.Get(c)
	s.CustomerLoggedIn = false
	s.CustomerUsername = ""
	if err := s.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}

// AdminLoginForm describes the admin login form.
func AdminLoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Admin login.", "fields": []string{"username", "password"}})
}

// AdminLogin authenticates against the static admin credentials.
func AdminLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	username := strings.TrimSpace(req.Username)

	if pass, ok := config.AdminUsers[username]; !ok || pass != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials."})
		return
	}

	s := session.Get(c)
	s.AdminLoggedIn = true
	s.AdminUsername = username
	if err := s.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin logged in."})
}

// AdminLogout clears the admin identity only.
func AdminLogout(c *gin.Context) {
	s := session.Get(c)
	s.AdminLoggedIn = false
	s.AdminUsername = ""
	if err := s.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin logged out."})
}
