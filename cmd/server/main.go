package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"order-grouping-service/internal/adapters/cache"
	"order-grouping-service/internal/adapters/durations"
	"order-grouping-service/internal/adapters/repositories"
	"order-grouping-service/internal/api"
	"order-grouping-service/internal/config"
	"order-grouping-service/internal/geo"
	"order-grouping-service/internal/platform/db"
	"order-grouping-service/internal/ports"
	"order-grouping-service/internal/reach"
	"order-grouping-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, redis, the Maps drive-time API)
// behind ports, builds the grouping engine from static reference
// tables, and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")
	tiersPath := os.Getenv("TIERS_PATH")

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	tiers, err := config.LoadTiers(tiersPath)
	if err != nil {
		log.Fatal(err)
	}

	// The live Maps provider is optional: without a key the checker
	// estimates drive times from the static coordinate table alone.
	var provider ports.DurationProvider
	if mapsKey := os.Getenv("MAPS_API_KEY"); strings.TrimSpace(mapsKey) != "" {
		var durationCache ports.DurationCache
		if redisURL := os.Getenv("REDIS_URL"); strings.TrimSpace(redisURL) != "" {
			opt, err := redis.ParseURL(redisURL)
			if err != nil {
				log.Fatal(err)
			}
			durationCache = cache.NewRedisDurationCache(redis.NewClient(opt))
		} else {
			log.Println("REDIS_URL not set; Maps lookups are uncached")
		}

		mapsURL := config.Get("MAPS_BASE_URL", "https://maps-distance.internal")
		provider, err = durations.NewMapsDurationProvider(mapsKey, mapsURL, durationCache)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("MAPS_API_KEY not set; using static drive-time estimates")
	}

	resolver := geo.NewResolver(geo.DefaultClusters())
	checker := reach.NewChecker(reach.DefaultCoordinates(), resolver.Remote, provider)
	engine := services.NewEngine(resolver, checker, tiers)

	repo := repositories.NewPostgresOrderRepository(database)
	router := api.NewRouter(repo, engine)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
