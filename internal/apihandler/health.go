package apihandler

import "github.com/gin-gonic/gin"

// Health handles GET /healthz with a trivial liveness probe.
func Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
