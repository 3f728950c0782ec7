package handlers

import (
	"net/http"
	"strings"

	"github.com/shubham26-source/Nutri-Tracker-App/internal/database"
	"github.com/shubham26-source/Nutri-Tracker-App/internal/models"
	"github.com/shubham26-source/Nutri-Tracker-App/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler owns registration and login.
type AuthHandler struct {
	db     *database.DB
	logger *zap.Logger
}

func NewAuthHandler(db *database.DB, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{db: db, logger: logger}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username, email, and password are required"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	// Uniqueness is enforced by the database constraint, not a pre-check, so
	// two concurrent registrations cannot race past each other.
	res, err := h.db.Execute(c.Request.Context(),
		`INSERT INTO users (username, email, hash) VALUES ($1, $2, $3) RETURNING id`,
		req.Username, req.Email, hashedPassword)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
			return
		}
		h.logger.Error("insert user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}

	userID := int(res.InsertedID)
	token, err := utils.GenerateToken(userID, req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user": gin.H{
			"id":       userID,
			"username": req.Username,
			"email":    req.Email,
		},
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles user login. Unknown usernames and wrong passwords produce the
// same response so the two cannot be told apart.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	var user models.User
	found, err := h.db.FetchOne(c.Request.Context(), &user,
		`SELECT id, username, email, hash FROM users WHERE username = $1`,
		req.Username)
	if err != nil {
		h.logger.Error("query user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging in"})
		return
	}

	if !found || !utils.CheckPasswordHash(req.Password, user.Hash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
