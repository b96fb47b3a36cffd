package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Ishan-giri-05293/private-memory-vault/internal/config"
	"github.com/Ishan-giri-05293/private-memory-vault/internal/handlers"
	"github.com/Ishan-giri-05293/private-memory-vault/internal/jobs"
	"github.com/Ishan-giri-05293/private-memory-vault/internal/records"
	cron "github.com/Ishan-giri-05293/private-memory-vault/internal/scheduler"
	"github.com/Ishan-giri-05293/private-memory-vault/internal/services"
	"github.com/Ishan-giri-05293/private-memory-vault/internal/storage"
	"github.com/Ishan-giri-05293/private-memory-vault/pkg/logger"
	"github.com/Ishan-giri-05293/private-memory-vault/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Open the vault data file
	kv, err := storage.NewKVStore(cfg.DataFile)
	if err != nil {
		log.Fatalf("Storage error: %v", err)
	}

	// --- Record stores ---
	goalStore := records.NewGoalStore(kv)
	memoryStore := records.NewMemoryStore(kv)
	notificationStore := records.NewNotificationStore(kv)

	// --- Services ---
	notificationService := services.NewNotificationService(notificationStore)
	goalService := services.NewGoalService(goalStore, notificationService)
	memoryService := services.NewMemoryService(memoryStore)
	authService := services.NewAuthService(cfg)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, cfg)
	goalHandler := handlers.NewGoalHandler(goalService)
	memoryHandler := handlers.NewMemoryHandler(memoryService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Login is the only unauthenticated API route
	router.HandleFunc("/login", authHandler.LoginHandler).Methods("POST")

	// Goal routes
	protectedGoalRoutes := router.PathPrefix("/goals").Subrouter()
	protectedGoalRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedGoalRoutes.HandleFunc("", goalHandler.CreateGoalHandler).Methods("POST")
	protectedGoalRoutes.HandleFunc("", goalHandler.GetGoalsHandler).Methods("GET")
	protectedGoalRoutes.HandleFunc("/{id}", goalHandler.GetGoalHandler).Methods("GET")
	protectedGoalRoutes.HandleFunc("/{id}", goalHandler.UpdateGoalHandler).Methods("PUT")
	protectedGoalRoutes.HandleFunc("/{id}", goalHandler.DeleteGoalHandler).Methods("DELETE")
	protectedGoalRoutes.HandleFunc("/{id}/achieve", goalHandler.ToggleAchievedHandler).Methods("POST")
	protectedGoalRoutes.HandleFunc("/{id}/milestones/{milestoneId}/toggle", goalHandler.ToggleMilestoneHandler).Methods("POST")

	// Memory routes
	protectedMemoryRoutes := router.PathPrefix("/memories").Subrouter()
	protectedMemoryRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedMemoryRoutes.HandleFunc("", memoryHandler.CreateMemoryHandler).Methods("POST")
	protectedMemoryRoutes.HandleFunc("", memoryHandler.GetMemoriesHandler).Methods("GET")
	protectedMemoryRoutes.HandleFunc("/{id}", memoryHandler.GetMemoryHandler).Methods("GET")
	protectedMemoryRoutes.HandleFunc("/{id}", memoryHandler.UpdateMemoryHandler).Methods("PUT")
	protectedMemoryRoutes.HandleFunc("/{id}", memoryHandler.DeleteMemoryHandler).Methods("DELETE")

	// Notification routes
	protectedNotificationRoutes := router.PathPrefix("/notifications").Subrouter()
	protectedNotificationRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedNotificationRoutes.HandleFunc("", notificationHandler.GetNotificationsHandler).Methods("GET")
	protectedNotificationRoutes.HandleFunc("/{id}/dismiss", notificationHandler.DismissNotificationHandler).Methods("POST")

	// Landing and promise pages are static files
	router.PathPrefix("/").Handler(http.FileServer(http.Dir("./web/")))

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Hourly target date reminders
	notifier := jobs.NewTargetDateNotifier(goalService, notificationService)
	cron.StartReminderCronJobs(notifier)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // adjust to frontend origin
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
