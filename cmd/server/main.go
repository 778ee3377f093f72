package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"

	"tododesk/internal/api"
	"tododesk/internal/auth"
	"tododesk/internal/cache"
	"tododesk/internal/config"
	"tododesk/internal/db"
	"tododesk/internal/session"
	"tododesk/internal/store"
	"tododesk/internal/todolist"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the local server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Open the local database and ensure the schema exists
	gdb, err := db.Open(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("failed to open database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	defer func() {
		_ = db.Close(gdb)
	}()

	// A fresh secret per run means sessions do not survive a restart of the
	// process unless JWT_SECRET is pinned.
	if cfg.JWTSecret == "" {
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			logrus.Fatalf("failed to generate session secret: %v", err)
		}
		cfg.JWTSecret = hex.EncodeToString(secret)
	}

	// Optional redis cache; a local install usually runs without one
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	st := store.New(gdb)
	authService := auth.NewService(st)
	sessions := session.NewManager(cfg.JWTSecret)
	list := todolist.New(st, cache.New(rdb))

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default()

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	api.Routes(r, authService, sessions, list)

	// Loopback only: this is a local application, not a network service
	log.Println("Server running on 127.0.0.1:" + cfg.AppPort)
	if err := r.Run("127.0.0.1:" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
