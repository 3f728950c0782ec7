package handlers

import "github.com/gin-gonic/gin"

// HealthCheck is the liveness probe.
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Nutri Tracker API is running",
	})
}

func Status(c *gin.Context) {
	c.JSON(200, gin.H{
		"service": "Nutri Tracker API",
		"version": "0.1.0",
		"status":  "operational",
	})
}
