package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"installation-route-service/internal/adapters/cache"
	"installation-route-service/internal/adapters/ors"
	"installation-route-service/internal/adapters/repositories"
	"installation-route-service/internal/api"
	"installation-route-service/internal/platform/db"
	"installation-route-service/internal/ports"
	"installation-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, ORS) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	country := getEnv("GEOCODE_COUNTRY", "BR")
	port := getEnv("PORT", "8080")

	pool, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	orsClient, err := ors.NewClient(orsKey, country)
	if err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewPostgresOrderRepository(pool)

	// Redis is optional; without it geocode results are still cached on
	// the order rows themselves.
	var geocodeCache ports.GeocodeCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		geocodeCache = cache.NewRedisGeocodeCache(redis.NewClient(opts), 30*24*time.Hour)
	}

	resolver := &services.Resolver{
		Geocoder: orsClient,
		Cache:    geocodeCache,
		Repo:     repo,
	}

	router := api.NewRouter(repo, resolver, orsClient)

	// Timeouts are tuned for cold-cache route planning (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
