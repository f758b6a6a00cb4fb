package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/creaturescripts/internal/config"
	"github.com/KirkDiggler/creaturescripts/internal/events"
	"github.com/KirkDiggler/creaturescripts/internal/repositories/definitions"
	"github.com/KirkDiggler/creaturescripts/internal/script"
	"github.com/KirkDiggler/creaturescripts/internal/services/loader"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Manifest: %s", cfg.Script.ManifestPath)
	log.Printf("Execution slots: %d", cfg.Script.MaxEnvs)
	if cfg.Script.WarSystem {
		log.Println("War system enabled")
	}

	runtime := script.NewLuaRuntime("CreatureScript Interface", cfg.Script.MaxEnvs)
	registry := events.NewRegistry(&events.RegistryConfig{
		Runtime:   runtime,
		WarSystem: cfg.Script.WarSystem,
	})

	manifestSource := loader.NewManifestSource(cfg.Script.ManifestPath)
	loaderConfig := &loader.ServiceConfig{
		Registry: registry,
		Source:   manifestSource,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis if URL is provided
	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to manifest definitions")
		} else {
			redisClient = redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to manifest definitions")
			} else {
				log.Println("Successfully connected to Redis")

				repo := definitions.NewRedis(redisClient)
				if _, seedErr := loader.Seed(ctx, repo, cfg.Script.ManifestPath); seedErr != nil {
					log.Printf("Failed to seed Redis definitions: %v", seedErr)
				}

				// Redis definitions keep scripts next to the manifest
				loaderConfig.Source = repo
				loaderConfig.ScriptDir = filepath.Dir(cfg.Script.ManifestPath)

				log.Println("Using Redis for creature event definitions")
			}
			cancel()
		}
	} else {
		log.Println("No REDIS_URL found, using manifest definitions")
	}

	svc := loader.NewService(loaderConfig)

	result, err := svc.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load creature events: %v", err)
	}
	log.Printf("Loaded %d of %d creature events", result.Registered+result.Merged, result.Total())

	fmt.Println("Creature scripts are now running. Send SIGHUP to reload, CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	for sig := range sc {
		if sig != syscall.SIGHUP {
			break
		}

		log.Println("Reloading creature events")
		result, err := svc.Reload(context.Background())
		if err != nil {
			log.Printf("Failed to reload creature events: %v", err)
			continue
		}
		log.Printf("Reloaded %d of %d creature events", result.Registered+result.Merged, result.Total())
	}

	fmt.Println("Shutting down...")

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}
