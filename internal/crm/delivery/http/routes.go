package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	clients := rg.Group("/crm")
	{
		clients.GET("/clients", h.Search)
	}
}
