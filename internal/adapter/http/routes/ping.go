package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const PathHealth = "/health"

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathHealth, health)
}

// health godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
