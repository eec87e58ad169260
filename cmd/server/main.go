package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"event-admission-platform/internal/config"
	"event-admission-platform/internal/database"
	"event-admission-platform/internal/handlers"
	"event-admission-platform/internal/middleware"
	"event-admission-platform/internal/repositories"
	"event-admission-platform/internal/services"
	"event-admission-platform/internal/ticketing"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if cfg.Ticketing.Secret == "" {
		log.Fatal("TICKET_SECRET must be set: the ticket encryption key is derived from it")
	}

	// Initialize database connection
	dbConfig := database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	}

	db, err := database.NewConnection(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()
	log.Println("Database connection established successfully")

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize the ticket engine
	cipher, err := ticketing.NewCipher(cfg.Ticketing.Secret)
	if err != nil {
		log.Fatal("Failed to initialize ticket cipher:", err)
	}
	renderer := ticketing.NewQRRenderer(cfg.Ticketing.QRSize)

	// Initialize repositories
	eventRepo := repositories.NewEventRepository(db.DB)
	ticketRepo := repositories.NewTicketRepository(db.DB)
	catalogRepo := repositories.NewCatalogRepository(db.DB)

	// Initialize storage for QR artifacts
	storage := services.NewStorageFactory(cfg).CreateStorageService()

	// Initialize services
	eventService := services.NewEventService(eventRepo)
	ticketService := services.NewTicketService(ticketRepo, eventRepo, cipher, renderer, storage)
	catalogService := services.NewCatalogService(catalogRepo)

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(eventService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	healthHandler := handlers.NewHealthHandler(db.DB)

	// Set up router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.LoggingMiddleware)

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.CORS.AllowedOrigins
	r.Use(middleware.CORSMiddleware(corsConfig))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Route("/events", func(r chi.Router) {
			r.Post("/", eventHandler.CreateEvent)
			r.Get("/", eventHandler.ListEvents)
			r.Get("/{id}", eventHandler.GetEvent)
		})

		r.Get("/categories", catalogHandler.ListCategories)
		r.Get("/payment-methods", catalogHandler.ListPaymentMethods)

		r.Route("/tickets", func(r chi.Router) {
			r.Post("/purchase", ticketHandler.PurchaseTickets)
			r.Post("/validate", ticketHandler.ValidateTicket)
			r.Get("/buyer/{email}", ticketHandler.BuyerTickets)
		})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on http://%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
