package main

import (
	"context"
	"log"

	"rag-chat-storage/internal/bootstrap"
	"rag-chat-storage/internal/config"
	"rag-chat-storage/internal/model"
	"rag-chat-storage/internal/server"
	"rag-chat-storage/internal/tracer"
	"rag-chat-storage/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Schema Initialization (fail fast if the store is unreachable)
	if err := gormDB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to ensure pgcrypto extension: %v. Continuing...", err)
	}
	if err := gormDB.AutoMigrate(&model.ChatSession{}, &model.ChatMessage{}); err != nil {
		log.Fatalf("Schema initialization failed: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 5. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
