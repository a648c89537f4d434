package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DevFolio/go-client-referral/internal/api"
	"github.com/DevFolio/go-client-referral/internal/db"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	database := openDatabase()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      api.NewRouter(database),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("admin API listening on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
}

func openDatabase() *gorm.DB {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		database, err := db.OpenPostgres(dsn)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		return database
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "clientdesk.db"
	}
	return db.InitDB(path)
}
