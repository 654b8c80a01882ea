package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/character-vault/internal/clients/dnd5e"
	"github.com/KirkDiggler/character-vault/internal/config"
	"github.com/KirkDiggler/character-vault/internal/handlers/api"
	charactersRepo "github.com/KirkDiggler/character-vault/internal/repositories/characters"
	"github.com/KirkDiggler/character-vault/internal/repositories/encounters"
	npcsRepo "github.com/KirkDiggler/character-vault/internal/repositories/npcs"
	characterService "github.com/KirkDiggler/character-vault/internal/services/character"
	contentService "github.com/KirkDiggler/character-vault/internal/services/content"
	encounterService "github.com/KirkDiggler/character-vault/internal/services/encounter"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dndClient, err := dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	})
	if err != nil {
		log.Printf("Failed to create D&D 5e client, using bundled content: %v", err)
		dndClient = dnd5e.NewStatic()
	}

	// Redis when reachable, in-memory otherwise. The in-memory stores
	// lose everything on restart, fine for local development.
	var characterRepo charactersRepo.Repository
	var bestiaryRepo npcsRepo.Repository

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	pingErr := redisClient.Ping(pingCtx).Err()
	cancel()

	if pingErr != nil {
		log.Printf("Redis not reachable at %s, using in-memory storage: %v", cfg.Redis.Addr, pingErr)
		characterRepo = charactersRepo.NewInMemoryRepository()
		bestiaryRepo = npcsRepo.NewInMemoryRepository()
	} else {
		log.Printf("Connected to Redis at %s", cfg.Redis.Addr)
		characterRepo = charactersRepo.NewRedisRepository(&charactersRepo.RedisRepoConfig{Client: redisClient})
		bestiaryRepo = npcsRepo.NewRedisRepository(&npcsRepo.RedisRepoConfig{Client: redisClient})
	}

	charSvc := characterService.NewService(&characterService.ServiceConfig{
		DNDClient:  dndClient,
		Repository: characterRepo,
	})
	encounterSvc := encounterService.NewService(&encounterService.ServiceConfig{
		Repository:       encounters.NewInMemoryRepository(),
		Bestiary:         bestiaryRepo,
		DNDClient:        dndClient,
		CharacterService: charSvc,
	})
	contentSvc := contentService.NewService(&contentService.ServiceConfig{
		DNDClient: dndClient,
		Bestiary:  bestiaryRepo,
	})

	if cfg.DND5E.PreloadContent {
		preloadContent(dndClient)
	}

	handler := api.NewHandler(&api.HandlerConfig{
		CharacterService: charSvc,
		EncounterService: encounterSvc,
		ContentService:   contentSvc,
		DNDClient:        dndClient,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Listening on %s", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	if pingErr == nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Redis close error: %v", err)
		}
	}
	log.Println("Stopped")
}

// preloadContent warms the upstream API's caches concurrently so the
// first real requests do not pay cold-start latency. Failures only log;
// the server works without the preload.
func preloadContent(client dnd5e.Client) {
	start := time.Now()
	var g errgroup.Group

	g.Go(func() error {
		classes, err := client.ListClasses()
		if err != nil {
			return err
		}
		log.Printf("Preloaded %d classes", len(classes))
		return nil
	})
	g.Go(func() error {
		species, err := client.ListSpecies()
		if err != nil {
			return err
		}
		log.Printf("Preloaded %d species", len(species))
		return nil
	})
	g.Go(func() error {
		items, err := client.ListEquipment()
		if err != nil {
			return err
		}
		log.Printf("Preloaded %d equipment items", len(items))
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("Content preload incomplete: %v", err)
		return
	}
	log.Printf("Content preload done in %s", time.Since(start))
}
