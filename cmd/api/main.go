package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"ubuzima-backend/cmd"
	"ubuzima-backend/internal/api"
	"ubuzima-backend/internal/chat"
	"ubuzima-backend/internal/database"
	"ubuzima-backend/internal/directory"
	"ubuzima-backend/internal/llm"
	"ubuzima-backend/internal/session"
	"ubuzima-backend/internal/sms"
	"ubuzima-backend/internal/stt"
	"ubuzima-backend/internal/translate"
)

type APIConfig struct {
	DatabaseURL      string `env:"DATABASE_URL" envDefault:"ubuzima.db"`
	APIPort          string `env:"API_PORT" envDefault:"8000"`
	GroqAPIKey       string `env:"GROQ_API_KEY,notEmpty,required"`
	GroqBaseURL      string `env:"GROQ_BASE_URL" envDefault:""`
	CompletionModel  string `env:"COMPLETION_MODEL" envDefault:""`
	TranslateBaseURL string `env:"TRANSLATE_BASE_URL" envDefault:""`
	SMSBaseURL       string `env:"SMS_BASE_URL" envDefault:""`
	SMSToken         string `env:"SMS_TOKEN,notEmpty,required"`
	SMSSender        string `env:"SMS_SENDER" envDefault:"PindoTest"`
	SpeechToTextURL  string `env:"STT_URL" envDefault:""`
	DoctorsFile      string `env:"DOCTORS_FILE" envDefault:""`
}

func main() {
	log.Println("Starting API Server...")

	cmd.LoadEnvFile()

	var cfg APIConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	doctors := directory.Default()
	if cfg.DoctorsFile != "" {
		doctors, err = directory.Load(cfg.DoctorsFile)
		if err != nil {
			log.Fatalf("Failed to load doctor directory: %v", err)
		}
	}

	completer := llm.NewClient(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.CompletionModel)
	translator := translate.NewClient(cfg.TranslateBaseURL)
	notifier := sms.NewClient(cfg.SMSBaseURL, cfg.SMSToken, cfg.SMSSender)

	var transcriber chat.Transcriber
	if cfg.SpeechToTextURL != "" {
		transcriber = stt.NewClient(cfg.SpeechToTextURL)
		slog.Info("speech-to-text enabled", "url", cfg.SpeechToTextURL)
	} else {
		slog.Info("speech-to-text disabled, audio uploads receive canned guidance")
	}

	orchestrator := chat.NewOrchestrator(db, completer, translator, transcriber)

	// --- Chi Router Setup ---
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(session.Middleware(db))

	api.NewAssistantService(db, orchestrator).AddRoutes(r)
	api.NewCareService(db, notifier, doctors).AddRoutes(r)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: r,
	}

	// Goroutine for graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("API server listening on port %s", cfg.APIPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
	}

	log.Println("Server stopped.")
}
