package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-app/api"
	"weather-app/controller"
	"weather-app/datasource"

	"github.com/joho/godotenv"
)

const missingKeyWarning = "Please add your OpenWeatherMap API key to config.json or OPENWEATHERMAP_API_KEY to use the weather app."

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Parse command line arguments
	port := flag.Int("port", 0, "Port to run the server on (overrides config)")
	configFile := flag.String("config", "config.json", "Path to configuration file")
	timeout := flag.Duration("timeout", 0, "Provider request timeout (overrides config)")
	flag.Parse()

	// Load configuration
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		config.Port = *port
	}
	if *timeout > 0 {
		config.Timeout = timeout.String()
	}

	provider := datasource.NewOpenWeatherMapProvider(config.OpenWeatherMap.APIKey, config.RequestTimeout())
	if config.OpenWeatherMap.BaseURL != "" {
		provider.SetBaseURL(config.OpenWeatherMap.BaseURL)
	}

	views := api.NewViewStore()
	ctrl := controller.NewController(provider, views)

	// The app still starts without a key; every view carries the warning
	if err := config.Validate(); err != nil {
		log.Printf("Warning: %v", err)
		ctrl.SetWarning(missingKeyWarning)
	}

	server := api.NewServer(ctrl, views, config.Port)

	// Set up channel for graceful shutdown
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	// Start the API server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdownChan
	fmt.Printf("Shutting down due to %s signal\n", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	fmt.Println("Shutdown complete")
}
