package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the CORS policy from the configured origin whitelist. A
// wildcard entry allows all origins; credentials are only enabled for an
// explicit whitelist, as the CORS spec forbids combining them with a
// wildcard.
func (m Middleware) CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		MaxAge:           12 * time.Hour,
	}

	allowAll := len(m.cfg.AllowedOrigins) == 0
	for _, origin := range m.cfg.AllowedOrigins {
		if origin == "*" {
			allowAll = true
			break
		}
	}

	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = m.cfg.AllowedOrigins
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}
