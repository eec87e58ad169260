package main

import (
	"log"

	"event-admission-platform/internal/config"
	"event-admission-platform/internal/database"
	"event-admission-platform/internal/models"
	"event-admission-platform/internal/repositories"
)

var categories = []struct {
	Name string
	Icon string
}{
	{"Concerts", "music"},
	{"Cultural", "theater"},
	{"Sports", "trophy"},
}

var paymentMethods = []struct {
	Name    string
	Kind    string
	Details string
}{
	{"Bank Transfer", "bank", "Bank: First National\nAccount: 0102-1234-56789\nHolder: City Fair Events"},
	{"Mobile Payment", "mobile", "Bank: First National\nPhone: 0424-1234567"},
	{"Cash", "cash", "Address: City Fair office, downtown\nHours: Mon-Fri 9am-5pm"},
}

var sampleEvents = []models.EventCreateRequest{
	{
		Name:           "Grand Fair Concert",
		Description:    "The most anticipated musical event of the season, featuring the best local artists in an unforgettable night.",
		Date:           "2026-01-20",
		Time:           "20:00",
		Location:       "Main Arena",
		Category:       "Concerts",
		Price:          50.00,
		ImageURL:       "https://images.unsplash.com/photo-1760965825135-e94f4e34494b?q=85",
		AvailableSeats: 5000,
	},
	{
		Name:           "Parade of Floats",
		Description:    "The traditional parade that fills the streets with color. A family spectacle full of tradition.",
		Date:           "2026-01-18",
		Time:           "15:00",
		Location:       "Main Avenue",
		Category:       "Cultural",
		Price:          25.00,
		ImageURL:       "https://images.unsplash.com/photo-1659700570209-6446cca08ad8?q=85",
		AvailableSeats: 10000,
	},
	{
		Name:           "Regional Cycling Tour",
		Description:    "The most important cycling competition in the region, through the mountain circuit.",
		Date:           "2026-01-15",
		Time:           "08:00",
		Location:       "City Circuit",
		Category:       "Sports",
		Price:          10.00,
		AvailableSeats: 3000,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

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

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	catalogRepo := repositories.NewCatalogRepository(db.DB)
	eventRepo := repositories.NewEventRepository(db.DB)

	for _, c := range categories {
		if err := catalogRepo.UpsertCategory(c.Name, c.Icon); err != nil {
			log.Fatal("Failed to seed category:", err)
		}
	}
	log.Printf("Seeded %d categories", len(categories))

	for _, m := range paymentMethods {
		if err := catalogRepo.UpsertPaymentMethod(m.Name, m.Kind, m.Details); err != nil {
			log.Fatal("Failed to seed payment method:", err)
		}
	}
	log.Printf("Seeded %d payment methods", len(paymentMethods))

	existing, err := eventRepo.List(1)
	if err != nil {
		log.Fatal("Failed to check existing events:", err)
	}
	if len(existing) > 0 {
		log.Println("Events already present, skipping sample events")
		return
	}

	for i := range sampleEvents {
		event, err := eventRepo.Create(&sampleEvents[i])
		if err != nil {
			log.Fatal("Failed to seed event:", err)
		}
		log.Printf("Seeded event %q (%s)", event.Name, event.ID)
	}
}
