package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode maps APP_ENV to a gin mode: "production" selects release mode,
// "test" selects test mode, and any other value keeps debug mode.
func SetGinMode(env string) {
	switch env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}
}
