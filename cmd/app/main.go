package main

import (
	"TalonAI/internal/config"
	"TalonAI/pkg/log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	logger := log.NewLogger()
	if envErr != nil {
		log.Warn(log.Fields{"error": envErr.Error()}, "No .env file loaded, using process environment")
	}

	fiberApp := config.NewFiber()
	validator := config.NewValidator()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithAIProvider(),
		config.WithS3Client(),
		config.WithMiddleware(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	if err := server.Shutdown(10 * time.Second); err != nil {
		log.Error(log.Fields{"error": err.Error()}, "Graceful shutdown failed")
	}
}
