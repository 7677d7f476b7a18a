package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// devOrigins covers the local toolchain the mobile client runs under:
// Metro, Expo dev server, Expo web, and local React dev servers.
var devOrigins = []string{
	"http://localhost:8081",
	"http://localhost:19006",
	"http://localhost:19000",
	"exp://localhost:19000",
	"http://localhost:3000",
	"http://localhost:3001",
}

// CORS returns a wildcard policy in production and an allow-list of local
// development origins (any localhost port, any Expo URL) otherwise.
// Credentials are enabled in both modes.
func CORS(env string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if env == "production" {
		cfg.AllowOrigins = []string{"*"}
		return cors.New(cfg)
	}

	cfg.AllowOrigins = devOrigins
	// gin-contrib/cors rejects non-http(s) schemes in AllowOrigins unless
	// they are declared here; exp:// is in devOrigins above.
	cfg.CustomSchemas = []string{"exp://"}
	cfg.AllowOriginFunc = func(origin string) bool {
		return strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "https://localhost:") ||
			strings.HasPrefix(origin, "exp://")
	}
	return cors.New(cfg)
}
