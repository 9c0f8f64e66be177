package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/AnshRaj112/moodtracker-backend/internal/config"
	"github.com/AnshRaj112/moodtracker-backend/internal/database"
	"github.com/AnshRaj112/moodtracker-backend/internal/handlers"
	"github.com/AnshRaj112/moodtracker-backend/internal/middleware"
	"github.com/AnshRaj112/moodtracker-backend/internal/routes"
	"github.com/AnshRaj112/moodtracker-backend/internal/services"
	"github.com/AnshRaj112/moodtracker-backend/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	if cfg.SupabaseURL == "" || cfg.SupabaseAnonKey == "" {
		log.Println("⚠️  WARNING: SUPABASE_URL / SUPABASE_ANON_KEY not set. Magic-link sign-in will not work.")
	}
	if cfg.SummaryWebhookURL == "" {
		log.Println("⚠️  WARNING: SUMMARY_WEBHOOK_URL not set. Weekly summaries will not work.")
	}

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	mongoDB, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoDB.Close()

	// Connect to Redis
	log.Printf("Connecting to Redis...")
	rdb, err := database.ConnectRedis(cfg.RedisURI)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer rdb.Close()

	// Mood store + indexes
	moods := storage.NewMoodStore(mongoDB)
	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := moods.EnsureIndexes(indexCtx); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure mood indexes: %v", err)
	} else {
		log.Println("✅ MongoDB mood indexes ensured")
	}
	indexCancel()

	// Auth gateway + session cache
	authClient := services.NewAuthClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	sessions := services.NewSessionCache(rdb, authClient)

	// Rotating wellness tips (stopped on shutdown so no timer dangles)
	tips := services.NewTipsRotator(services.DefaultTipInterval)
	tips.Start()
	defer tips.Stop()

	h := handlers.New(moods, sessions, authClient, tips, cfg.SummaryWebhookURL)

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimit(rdb))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r, h)

	// Log registered routes for debugging
	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /api/auth/magic-link")
	log.Println("  GET  /api/auth/me")
	log.Println("  POST /api/auth/signout")
	log.Println("  POST /api/mood")
	log.Println("  GET  /api/mood")
	log.Println("  POST /api/weekly-summary")
	log.Println("  GET  /api/tips")

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 Mood tracker backend running on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Graceful shutdown: stop accepting, drain in-flight requests, then let the
	// deferred closes tear down the store handles
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  WARNING: server shutdown: %v", err)
	}
}
