package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"eventx/internal/events"
	"eventx/internal/gallery"
	"eventx/internal/shared/config"
	"eventx/internal/shared/constants"
	"eventx/internal/shared/database"
	"eventx/internal/shared/storage"
)

type Seeder struct {
	db *database.DB
	kv storage.KV
}

func main() {
	fmt.Println("🌱 Starting EventX Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize stores
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize stores: %v", err)
	}
	defer db.Close()

	if db.Redis == nil {
		log.Fatal("Seeding requires Redis: set REDIS_ENABLED=true")
	}

	seeder := &Seeder{db: db, kv: storage.NewRedisKV(db.Redis)}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Clean stores
	fmt.Println("\n🧹 Cleaning record store...")
	if err := seeder.Clean(ctx); err != nil {
		log.Fatalf("Failed to clean record store: %v", err)
	}
	fmt.Println("✅ Record store cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding...")
	if err := seeder.SeedAll(ctx); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
	fmt.Println("✅ Seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Store is ready for testing.")
}

// Clean removes every record including the catalog, so the seed starts
// from a blank store.
func (s *Seeder) Clean(ctx context.Context) error {
	keys := append([]string{}, constants.WipeKeys...)
	keys = append(keys, constants.StorageKeyEvents)
	return s.kv.Del(ctx, keys...)
}

// SeedAll writes the sample catalog and, when the gallery store is up,
// the sample galleries.
func (s *Seeder) SeedAll(ctx context.Context) error {
	eventRepo := events.NewRepository(s.kv)
	if err := eventRepo.SaveAll(ctx, events.SampleEvents()); err != nil {
		return fmt.Errorf("failed to seed event catalog: %w", err)
	}
	fmt.Printf("  • %d catalog events\n", len(events.SampleEvents()))

	if s.db.Gallery != nil {
		galleryService := gallery.NewService(gallery.NewRepository(s.db.Gallery))
		if err := galleryService.EnsureSeeded(ctx); err != nil {
			return fmt.Errorf("failed to seed gallery: %w", err)
		}
		fmt.Println("  • sample photo galleries")
	}

	return nil
}
