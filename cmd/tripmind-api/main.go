// README: Entry point; loads config, wires the planner and starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripmind/internal/ai"
	"tripmind/internal/config"
	httptransport "tripmind/internal/http"
	"tripmind/internal/infra"
	"tripmind/internal/maps"
	"tripmind/internal/modules/itinerary"
	"tripmind/internal/modules/quota"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var generator itinerary.Generator
	switch cfg.AI.Provider {
	case "mock":
		generator = ai.NewMockProvider()
	case "gemini":
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		generator = gemini
	default:
		log.Fatalf("unknown AI provider %q", cfg.AI.Provider)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	var resolver itinerary.DestinationResolver
	var attractions itinerary.AttractionFinder
	if cfg.AI.MapsKey != "" {
		places, err := maps.NewPlacesService(cfg.AI.MapsKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		resolver = places
		attractions = places
	}

	quotaSvc := quota.NewService(quota.NewStore(dbPool))
	store := itinerary.NewStore(dbPool, redisClient)

	planner := itinerary.NewService(generator, resolver, quotaSvc, store)
	planner.SetCacheTTL(time.Duration(cfg.Cache.TTLMinutes) * time.Minute)
	if attractions != nil {
		planner.SetAttractionFinder(attractions)
	}

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(planner)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s (provider=%s)", cfg.HTTP.Addr, cfg.AI.Provider)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
