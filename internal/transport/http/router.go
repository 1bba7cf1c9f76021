package httptransport

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/glowbook/salon-directory/internal/transport/http/handler"
	"github.com/glowbook/salon-directory/internal/transport/http/middleware"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, authHandler *handler.AuthHandler, resetHandler *handler.ResetHandler, salonHandler *handler.SalonHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.POST("/forgot-password", resetHandler.Request)
	r.POST("/reset-password", resetHandler.Reset)

	r.GET("/salons", salonHandler.List)
	r.POST("/salons", salonHandler.Create)

	return r
}
