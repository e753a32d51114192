package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/zanda/offday-portal/internal/config"
	"github.com/zanda/offday-portal/internal/directus"
	"github.com/zanda/offday-portal/internal/handler"
	"github.com/zanda/offday-portal/internal/middleware"
	"github.com/zanda/offday-portal/internal/queue"
	"github.com/zanda/offday-portal/internal/router"
	"github.com/zanda/offday-portal/internal/service"
	"github.com/zanda/offday-portal/internal/session"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	store := directus.New(directus.Config{
		BaseURL: cfg.PlatformURL,
		Token:   cfg.PlatformToken,
		Timeout: cfg.RequestTimeout,
	})
	if cfg.PlatformToken == "" {
		log.Printf("DIRECTUS_API_KEY not set: platform client disabled, submissions will fail")
	}

	svc := service.New(store, queue.NewAMQPPublisher(cfg.QueueURL))
	sessions := session.NewManager(cfg.CookieName, cfg.CookieTTL)

	// Redis backs the login limiter; without it the limiter is a no-op.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable: login rate limiting disabled")
	}
	limiter := middleware.NewLoginLimiter(config.LoadRateLimitConfig(), rdb)

	if cfg.ConsumeEvents {
		go func() {
			if err := queue.StartOffDayConsumer(cfg.QueueURL); err != nil {
				log.Printf("offday-consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.Renderer = handler.NewRenderer()
	pages := handler.NewPageHandler(svc, sessions)
	api := handler.NewAPIHandler(svc)
	router.Register(e, pages, api, limiter)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
