package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/TallerServices01/maintenance-tracker/internal/config"
	dbpkg "github.com/TallerServices01/maintenance-tracker/internal/db"
	"github.com/TallerServices01/maintenance-tracker/internal/middleware"
	"github.com/TallerServices01/maintenance-tracker/internal/routes"
	"github.com/TallerServices01/maintenance-tracker/internal/session"
	"github.com/TallerServices01/maintenance-tracker/internal/storage"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	mgr := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	store := newSessionStore(cfg)

	var uploader storage.Uploader
	if cfg.PhotoStorageEnabled() {
		uploader = storage.NewS3Uploader(cfg)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.LoadHTMLGlob("web/templates/*.html")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, mgr, store, uploader)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// newSessionStore picks redis when an address is configured and falls back to
// the in-process store for single-instance deployments.
func newSessionStore(cfg *config.Config) session.Store {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDRESS not set, using in-memory session store")
		return session.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("failed to connect to redis at %s: %v", cfg.RedisAddr, err)
	}

	return session.NewRedisStore(client)
}
