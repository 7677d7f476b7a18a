package httptransport

import (
	"log/slog"

	"github.com/Nrvenki/recipe/internal/transport/http/handler"
	"github.com/Nrvenki/recipe/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(
	logger *slog.Logger,
	env string,
	favoriteHandler *handler.FavoriteHandler,
	userHandler *handler.UserHandler,
	resetHandler *handler.PasswordResetHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(middleware.CORS(env))
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	api := r.Group("/api")
	api.GET("/health", handler.Health)

	api.POST("/favorites", favoriteHandler.Add)
	api.GET("/favorites/:userId", favoriteHandler.List)
	api.DELETE("/favorites/:userId/:recipeId", favoriteHandler.Remove)

	api.POST("/users/register", userHandler.Register)
	api.GET("/users/stats/:externalUserId", userHandler.Stats)

	reset := api.Group("/password-reset")
	reset.POST("/send-code", resetHandler.SendCode)
	reset.POST("/verify-code", resetHandler.VerifyCode)

	return r
}
