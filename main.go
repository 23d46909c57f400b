package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/kanasensei/internal/ai"
	"github.com/example/kanasensei/internal/catalog"
	"github.com/example/kanasensei/internal/database"
	"github.com/example/kanasensei/internal/excel"
	"github.com/example/kanasensei/internal/progress"
	"github.com/example/kanasensei/internal/scheduler"
	"github.com/example/kanasensei/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// The progress record falls back to memory when the database is
	// unavailable: quizzes keep working, nothing survives a restart.
	var store progress.Store
	if err := database.Connect(); err != nil {
		log.Printf("Warning: failed to connect to database, progress will not persist: %v", err)
		store = progress.NewMemoryStore()
	} else {
		defer database.Close()
		store = database.NewProgressStore()
	}
	tracker := progress.NewTracker(store)

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load character catalog: %v", err)
	}

	// Optional extra character sets from a spreadsheet
	if path := os.Getenv("CHAR_IMPORT_FILE"); path != "" {
		chars, result, err := excel.ImportCharacters(excel.DefaultImportConfig(path))
		if err != nil {
			log.Printf("Warning: character import failed: %v", err)
		} else {
			cat = cat.WithExtra(chars)
			log.Printf("Imported %d extra characters from %s (%d rows skipped)", result.Imported, path, result.Skipped)
			for _, importErr := range result.Errors {
				log.Printf("Import: %s", importErr)
			}
		}
	}

	tutor, err := ai.New(tracker)
	if err != nil {
		log.Printf("Warning: tutor disabled: %v", err)
		tutor = nil
	}

	sched := scheduler.New(tracker, scheduler.LogNotifier{})
	sched.Start()
	defer sched.Stop()

	srv := server.New(cat, tracker, tutor)

	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Println("Server started. Press Ctrl+C to stop.")
	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped successfully")
}
