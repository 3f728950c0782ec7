package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shubham26-source/Nutri-Tracker-App/internal/database"
	"github.com/shubham26-source/Nutri-Tracker-App/internal/middleware"
	"github.com/shubham26-source/Nutri-Tracker-App/internal/models"
	"github.com/shubham26-source/Nutri-Tracker-App/internal/nutrition"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 50
)

// FoodHandler owns nutrition search and the personal food log.
type FoodHandler struct {
	db       *database.DB
	resolver *nutrition.Resolver
	logger   *zap.Logger
}

func NewFoodHandler(db *database.DB, resolver *nutrition.Resolver, logger *zap.Logger) *FoodHandler {
	return &FoodHandler{db: db, resolver: resolver, logger: logger}
}

// Search resolves a free-text query through the provider chain. Public route.
func (h *FoodHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		query = strings.TrimSpace(c.Query("q"))
	}
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query required"})
		return
	}

	foods, err := h.resolver.Search(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("nutrition search failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching nutrition data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

type logFoodRequest struct {
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// LogFood records one consumed item for the authenticated user. The wall
// clock is read and decomposed here, in the same call that writes the row.
func (h *FoodHandler) LogFood(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req logFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.FoodName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_name is required"})
		return
	}

	now := time.Now()
	res, err := h.db.Execute(c.Request.Context(),
		`INSERT INTO food_count (food_name, calories, protein, carbs, fat, month, day, year, hour, minute, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
		req.FoodName, req.Calories, req.Protein, req.Carbs, req.Fat,
		int(now.Month()), now.Day(), now.Year(), now.Hour(), now.Minute(), userID)
	if err != nil {
		h.logger.Error("insert food log failed", zap.Int("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging food"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Food logged successfully",
		"id":      res.InsertedID,
	})
}

// GetLogs returns the authenticated user's most recent entries, newest first.
func (h *FoodHandler) GetLogs(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	limit := parseLogLimit(c.Query("limit"))

	logs := make([]models.FoodLogEntry, 0)
	err := h.db.FetchAll(c.Request.Context(), &logs,
		`SELECT id, food_name, calories, protein, carbs, fat, month, day, year, hour, minute, user_id
		 FROM food_count WHERE user_id = $1
		 ORDER BY year DESC, month DESC, day DESC, hour DESC, minute DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		h.logger.Error("fetch food logs failed", zap.Int("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func parseLogLimit(raw string) int {
	limit := defaultLogLimit
	if parsed, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && parsed > 0 {
		limit = parsed
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}
	return limit
}
