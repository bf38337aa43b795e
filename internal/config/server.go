package config

import (
	"TalonAI/database/migration"
	"TalonAI/database/postgres"
	"TalonAI/database/sqlite"
	aiHandler "TalonAI/internal/api/ai/handler"
	aiService "TalonAI/internal/api/ai/service"
	commandHandler "TalonAI/internal/api/command/handler"
	commandRepository "TalonAI/internal/api/command/repository"
	commandService "TalonAI/internal/api/command/service"
	sessionHandler "TalonAI/internal/api/session/handler"
	sessionRepository "TalonAI/internal/api/session/repository"
	sessionService "TalonAI/internal/api/session/service"
	"TalonAI/internal/middleware"
	"TalonAI/pkg/aiprovider"
	"TalonAI/pkg/gemini"
	"TalonAI/pkg/openai"
	"TalonAI/pkg/s3"
	"TalonAI/pkg/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	db         *sqlx.DB
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	handlers   []handler
	aiProvider aiprovider.IProvider
	s3Client   s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if server.aiProvider == nil {
		return nil, fmt.Errorf("AI provider is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log, middleware.Options{})
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase opens the store selected by DB_DRIVER (postgres or sqlite3)
// and creates the schema.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		var (
			db  *sqlx.DB
			err error
		)

		switch driver := getEnv("DB_DRIVER", postgres.DriverName); driver {
		case postgres.DriverName:
			db, err = postgres.New()
		case sqlite.DriverName:
			db, err = sqlite.New("")
		default:
			return fmt.Errorf("unsupported DB_DRIVER %q", driver)
		}
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := migration.Migrate(ctx, db); err != nil {
			db.Close()
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		s.db = db
		return nil
	}
}

// WithDB uses an already opened, migrated handle.
func WithDB(db *sqlx.DB) ServerOption {
	return func(s *Server) error {
		s.db = db
		return nil
	}
}

// WithAIProvider builds the client selected by AI_PROVIDER (openai or gemini).
func WithAIProvider() ServerOption {
	return func(s *Server) error {
		var (
			provider aiprovider.IProvider
			err      error
		)

		switch name := getEnv("AI_PROVIDER", "openai"); name {
		case "openai":
			provider, err = openai.New(openai.ConfigFromEnv())
		case "gemini":
			provider, err = gemini.NewGeminiClient()
		default:
			return fmt.Errorf("unsupported AI_PROVIDER %q", name)
		}
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create AI provider: %v", err)
			}
			return fmt.Errorf("failed to create AI provider: %w", err)
		}

		s.aiProvider = provider
		return nil
	}
}

// WithProvider injects a ready provider.
func WithProvider(provider aiprovider.IProvider) ServerOption {
	return func(s *Server) error {
		s.aiProvider = provider
		return nil
	}
}

// WithS3Client enables the audio archive when AWS_BUCKET_NAME is set.
func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if errors.Is(err, s3.ErrBucketNotConfigured) {
			if s.log != nil {
				s.log.Info("AWS_BUCKET_NAME not set, audio archive disabled")
			}
			return nil
		}
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		s.middleware = middleware.New(s.log, middleware.Options{
			RequestsPerSecond: getFloat("AI_RATE_LIMIT", 5),
			Burst:             getInt("AI_RATE_BURST", 20),
		})
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	dbTimeout := getDuration("DB_TIMEOUT", 10*time.Second)
	aiTimeout := getDuration("AI_TIMEOUT", 0)

	// Command Registry
	commandRepo := commandRepository.New(s.db, s.log)
	commandServices := commandService.NewCommandService(s.log, commandRepo)
	commandHandlers := commandHandler.New(s.log, s.validator, s.middleware, commandServices, dbTimeout)

	// Session Log
	sessionRepo := sessionRepository.New(s.db, s.log)
	sessionServices := sessionService.NewSessionService(s.log, sessionRepo)
	sessionHandlers := sessionHandler.New(s.log, s.validator, s.middleware, sessionServices, dbTimeout)

	// AI Gateway
	aiServices := aiService.NewAIService(s.log, s.aiProvider, s.s3Client, s.utils, getEnv("STT_LANGUAGE", "pt"))
	aiHandlers := aiHandler.New(s.log, s.validator, s.middleware, aiServices, s.utils, aiTimeout)

	s.handlers = append(s.handlers, commandHandlers, sessionHandlers, aiHandlers)
}

// Mount attaches middleware and every registered handler to the engine.
func (s *Server) Mount() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	s.setupHealthCheck()

	router := s.engine.Group(getEnv("API_PREFIX", "/api"))
	for _, h := range s.handlers {
		h.Start(router)
	}
}

func (s *Server) Run() error {
	s.Mount()

	port := getEnv("APP_PORT", "5000")
	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) App() *fiber.App {
	return s.engine
}

// Shutdown stops accepting requests, then releases the provider and the
// database.
func (s *Server) Shutdown(timeout time.Duration) error {
	err := s.engine.ShutdownWithTimeout(timeout)

	if closer, ok := s.aiProvider.(interface{ Close() }); ok {
		closer.Close()
	}
	if s.db != nil {
		if dbErr := s.db.Close(); dbErr != nil && err == nil {
			err = dbErr
		}
	}
	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
