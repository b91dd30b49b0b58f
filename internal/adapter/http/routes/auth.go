package routes

import (
	"okbikes_admin/internal/adapter/http/handlers"
	"okbikes_admin/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, guard *middleware.SessionGuard, sessionHandler *handlers.SessionHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", sessionHandler.Login)
		auth.POST("/logout", sessionHandler.Logout)
		auth.GET("/session", guard.Require(), sessionHandler.Me)
	}
}
