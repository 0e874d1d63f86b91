package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"peerfinder_server/routes"
	"peerfinder_server/services"
	"peerfinder_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize the participant store
	var store services.ParticipantStore
	switch os.Getenv("STORAGE_BACKEND") {
	case "dynamodb":
		log.Println("Initializing DynamoDB participant store...")
		dynamoService := &services.DynamoService{Client: services.InitializeDynamoDBClient()}
		store = &services.DynamoStore{Dynamo: dynamoService}
	default:
		log.Println("Initializing S3 participant store...")
		store = &services.S3Store{
			Client:    services.InitializeS3Client(),
			Bucket:    envOr("AWS_S3_BUCKET", "peerfinder-storage-bucket"),
			ObjectKey: envOr("CSV_OBJECT_KEY", "peer_matching_data_v2.csv"),
		}
	}
	dataset := &services.DatasetService{Store: store}

	// Initialize the Socket.IO server for realtime match events
	socketServer := socket.NewServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket.IO server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Notifications: email plus realtime socket events, both best-effort
	notifier := services.MultiNotifier{
		&services.EmailNotifier{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     envOr("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     envOr("MAIL_FROM", "noreply@peerfinder.app"),
		},
		&services.SocketNotifier{Server: socketServer},
	}

	// Initialize Services
	matchService := &services.MatchService{
		Dataset:       dataset,
		Notifier:      notifier,
		StatusBaseURL: envOr("STATUS_BASE_URL", "http://localhost:5173"),
		CascadeUnpair: os.Getenv("CASCADE_UNPAIR") == "true",
	}
	adminService := &services.AdminService{
		Match: matchService,
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	registrationService := &services.RegistrationService{Dataset: dataset, Notifier: notifier}
	feedbackService := &services.FeedbackService{
		Client:    services.InitializeS3Client(),
		Bucket:    envOr("AWS_S3_BUCKET", "peerfinder-storage-bucket"),
		ObjectKey: envOr("FEEDBACK_OBJECT_KEY", "peer_finder_feedback.csv"),
	}
	chatService := &services.ChatService{
		Dynamo:  &services.DynamoService{Client: services.InitializeDynamoDBClient()},
		Dataset: dataset,
		Server:  socketServer,
	}

	// Set up the server port
	port := envOr("PORT", "8080")
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to PeerFinder")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "active"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterRegistrationRoutes(r, registrationService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterAdminRoutes(r, adminService, feedbackService, os.Getenv("ADMIN_PASSWORD"))
	routes.RegisterFeedbackRoutes(r, feedbackService)
	routes.RegisterChatRoutes(r, chatService)
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
