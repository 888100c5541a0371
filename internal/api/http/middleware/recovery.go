package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/domain"
	"github.com/capstone-ideas/ideagen-backend/internal/logging"
)

// Recovery turns a panic into the generic 500 body. The panic value is only
// logged.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logging.NewLogger(c.Request.Context()).LogError("panic", fmt.Errorf("%v", recovered),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, domain.ErrorResponse{Error: domain.MessageInternalError})
	})
}
