package http

import "github.com/gin-gonic/gin"

// Register registers the generation routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/generate", h.Generate)
}
