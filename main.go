package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/yashasvi9199/MatchFind/config"
	"github.com/yashasvi9199/MatchFind/middleware"
	"github.com/yashasvi9199/MatchFind/routes"
	"github.com/yashasvi9199/MatchFind/services"
	"github.com/yashasvi9199/MatchFind/socket"
	"github.com/yashasvi9199/MatchFind/wizard"
)

func main() {
	cfg := config.LoadConfig()

	// Select the store backend: DynamoDB for real deployments, the
	// in-memory store for local development.
	var (
		profiles     services.ProfileStore
		interactions services.InteractionStore
		uploader     services.Uploader
	)
	if cfg.StoreBackend == "memory" {
		log.Println("Using in-memory store backend")
		mem := services.NewMemoryStore()
		profiles = mem
		interactions = mem
		uploader = services.NewMemoryUploader()
	} else {
		log.Println("Initializing DynamoDB client...")
		dynamoService := &services.DynamoService{Client: services.InitializeDynamoDBClient()}
		log.Println("DynamoDB client initialized.")

		profiles = services.NewProfileService(dynamoService, cfg.ProfilesTable)
		interactions = services.NewInteractionService(dynamoService, cfg.InteractionsTable)

		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			log.Fatalf("Failed to load AWS config: %v", err)
		}
		uploader = &services.S3Uploader{
			Client: s3.NewFromConfig(awsCfg),
			Bucket: cfg.S3Bucket,
			Region: cfg.AWSRegion,
		}
	}

	// Initialize Services
	mediaService := services.NewMediaService(uploader)
	matchService := services.NewMatchService(profiles, interactions)
	searchService := services.NewSearchService(matchService)
	registry := wizard.NewRegistry(profiles, mediaService)
	validate := validator.New()

	// Socket hub pushes mutual-match events
	hub := socket.NewHub()
	go func() {
		if err := hub.Server.Serve(); err != nil {
			log.Printf("❌ Socket server error: %v", err)
		}
	}()
	defer hub.Server.Close()

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to MatchFind")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	r.Handle("/socket.io/", hub.Server)

	// Register routes
	routes.RegisterCatalogRoutes(r)
	routes.RegisterProfileRoutes(r, profiles)
	routes.RegisterWizardRoutes(r, registry, profiles, validate)
	routes.RegisterInteractionRoutes(r, matchService, profiles, hub, validate)
	routes.RegisterMatchRoutes(r, matchService, profiles)
	routes.RegisterSearchRoutes(r, searchService, profiles)

	// Authentication wraps everything except the public endpoints
	r.Use(middleware.Auth(cfg.JWTSecret, "/", "/health", "/api/catalog"))

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
