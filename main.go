package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jabbate19/devcade-api/api"
	"github.com/jabbate19/devcade-api/config"
	"github.com/jabbate19/devcade-api/database"
	"github.com/jabbate19/devcade-api/models"
	"github.com/jabbate19/devcade-api/services"
	"github.com/jabbate19/devcade-api/storage"
)

func main() {
	fmt.Println("Initializing app...")

	cfg := config.Load()
	if cfg.SQLURI == "" {
		fmt.Println("SQL_URI is required. Exiting...")
		os.Exit(1)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.SQLURI,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Tag{}, &models.Game{}); err != nil {
		fmt.Printf("Error migrating schema: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.NewClient(context.Background(), cfg)
	if err != nil {
		fmt.Printf("Error initializing object storage client: %v\n", err)
		os.Exit(1)
	}

	var cache *services.ListingCache
	if cfg.RedisAddr != "" {
		cache = services.NewListingCache(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	currentDB := database.New(db)
	games := services.NewGameService(currentDB.GameRepo(), store, cache)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(cfg, currentDB, games)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
