package middleware

import "voice-ai-agent/pkg/log"

// Config carries the middleware settings.
type Config struct {
	// AllowedOrigins is the CORS origin whitelist; "*" allows all.
	AllowedOrigins []string
	// GenerateRateLimitPerMin throttles the synthesis endpoint per client
	// IP; 0 disables the limiter.
	GenerateRateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newRateLimiter(cfg.GenerateRateLimitPerMin),
	}
}
