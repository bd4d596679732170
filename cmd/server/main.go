package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/jfcamacho/vuelacol/internal/handler"
	"github.com/jfcamacho/vuelacol/internal/middleware"
	"github.com/jfcamacho/vuelacol/internal/ratelimit"
	"github.com/jfcamacho/vuelacol/internal/store"
)

type Config struct {
	Port          string
	RedisEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisTTL      time.Duration
	SearchDelay   time.Duration
	GenerateDelay time.Duration
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := loadConfig()
	e := echo.New()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.RequestID())

	var persist store.Persistence
	if cfg.RedisEnabled {
		redisPersist, err := store.NewRedisPersistence(store.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		persist = redisPersist
		log.Printf("Redis persistence enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		persist = store.NewMemoryPersistence()
		log.Println("Redis disabled, using in-memory persistence")
	}
	defer persist.Close()

	tripStore := store.New(persist)
	h := handler.New(tripStore, cfg.SearchDelay, cfg.GenerateDelay)

	limiter := ratelimit.NewSessionLimiterWithDefaults()

	api := e.Group("/api/v1", middleware.Session(), middleware.RateLimit(limiter))
	api.GET("/locations", h.GetLocations)
	api.GET("/trip", h.GetTrip)
	api.POST("/trip/search", h.UpdateSearch)
	api.GET("/flights", h.GetFlights)
	api.GET("/flights/return", h.GetReturnFlights)
	api.POST("/trip/flight", h.SelectFlight)
	api.POST("/trip/return-flight", h.SelectReturnFlight)
	api.POST("/trip/navigate", h.Navigate)
	api.GET("/trip/pricing", h.GetPricing)
	api.POST("/trip/reset", h.Reset)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting vuelacol server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		RedisEnabled:  getEnvBool("REDIS_ENABLED", false),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisTTL:      getEnvDuration("REDIS_TTL", 24*time.Hour),
		SearchDelay:   getEnvDuration("SEARCH_DELAY", 2*time.Second),
		GenerateDelay: getEnvDuration("GENERATE_DELAY", 2*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
