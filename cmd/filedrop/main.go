package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/filedrop/filedrop_api/internal/api"
	"github.com/filedrop/filedrop_api/internal/auth"
	"github.com/filedrop/filedrop_api/internal/blobstore"
	"github.com/filedrop/filedrop_api/internal/config"
	"github.com/filedrop/filedrop_api/internal/database"
	"github.com/filedrop/filedrop_api/internal/logging"
	"github.com/filedrop/filedrop_api/internal/store"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.NewLogger(cfg)

	store, err := store.NewPGStore(cfg)
	if err != nil {
		log.Fatalf("failed to create store: %v", err)
	}

	if err := database.RunMigrations(store.Conn(), cfg); err != nil {
		store.Close()
		log.Fatalf("failed to run migrations: %v", err)
	}

	blobs, err := blobstore.New(cfg)
	if err != nil {
		store.Close()
		log.Fatalf("failed to create blob store: %v", err)
	}

	authManager := auth.NewJWTManager(cfg)

	server := api.NewServer(cfg, store, blobs, authManager, logger)

	go func() {
		if err := server.Start(); err != nil {
			store.Close()
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	signCh := make(chan os.Signal, 1)
	signal.Notify(signCh, os.Interrupt, syscall.SIGTERM)
	<-signCh

	log.Println("shutting down gracefully...")
	if err := server.Shutdown(); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
	store.Close()
}
