package http

import (
	"github.com/gin-gonic/gin"

	"voice-ai-agent/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The synthesis
// endpoint is rate limited per client IP; the agent routes are not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/generate", mw.RateLimit(), h.Generate)

	agent := rg.Group("/agent")
	{
		agent.GET("/history/:session_id", h.History)
		agent.POST("/chat/:session_id", h.Chat)
	}
}
