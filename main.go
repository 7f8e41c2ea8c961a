package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agrimitra/advisory"
	"agrimitra/db"
	"agrimitra/market"
	"agrimitra/pest"
	"agrimitra/rdx"
	"agrimitra/routes"
	"agrimitra/weather"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// Security headers middleware
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

// Middleware: Simple request logging
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[%s] %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// Set up all routes and middleware layers
func setupRouter(weatherH *weather.Handlers, marketH *market.Handlers, advisoryH *advisory.Handlers, pestH *pest.Handlers) http.Handler {
	router := httprouter.New()
	router.GET("/health", health)

	routes.AddAuthRoutes(router)
	routes.AddCropRoutes(router)
	routes.AddAdvisoryRoutes(router, advisoryH)
	routes.AddWeatherRoutes(router, weatherH)
	routes.AddMarketRoutes(router, marketH)
	routes.AddPestRoutes(router, pestH)
	routes.AddHomeRoutes(router)
	routes.AddStaticRoutes(router)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return loggingMiddleware(securityHeaders(c.Handler(router)))
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatalf("MONGODB_URI environment variable is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	client, err := db.Connect(ctx, mongoURI)
	cancel()
	if err != nil {
		log.Fatalf("Could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Mongo disconnect failed: %v", err)
		}
	}()
	log.Println("Connected to MongoDB")

	if err := rdx.Connect(env("REDIS_ADDR", "localhost:6379"), os.Getenv("REDIS_PASSWORD")); err != nil {
		log.Printf("Redis unavailable (%v); continuing without cache", err)
		rdx.Conn = nil
	}

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := market.Seed(seedCtx); err != nil {
		log.Printf("Market seed failed: %v", err)
	}
	cancelSeed()

	weatherProvider := weather.NewCachedProvider(
		weather.NewHTTPProvider(env("WEATHER_API_URL", "https://api.open-meteo.com/v1/forecast")),
	)
	marketSource := market.NewMongoSource()

	handler := setupRouter(
		weather.NewHandlers(weatherProvider),
		market.NewHandlers(marketSource),
		advisory.NewHandlers(weatherProvider, marketSource),
		pest.NewHandlers(weatherProvider),
	)

	port := env("PORT", "10000")
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Server started on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on port %s: %v", port, err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)
	<-shutdownChan

	log.Println("Shutdown signal received. Shutting down gracefully...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
