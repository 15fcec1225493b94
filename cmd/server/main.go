package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	"parkease/internal/api"
	"parkease/internal/auth"
	"parkease/internal/repository"
	"parkease/internal/service"
	"parkease/internal/slots"
)

const draftTTL = 15 * time.Minute

func main() {
	godotenv.Load()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@parkease.in"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	catalogRepo := repository.NewCatalogRepository()
	bookingRepo := repository.NewBookingRepository()
	draftRepo := repository.NewDraftRepository(draftTTL)
	userRepo, err := repository.NewUserRepository(adminEmail, adminPassword)
	if err != nil {
		log.Fatalf("Failed to seed user store: %v", err)
	}

	slotSvc := service.NewSlotService(slots.NewGenerator(slots.DefaultConfig(), nil))
	bookingSvc := service.NewBookingService(catalogRepo, slotSvc, draftRepo, bookingRepo, service.LogNotifier{})
	authSvc := service.NewAuthService(userRepo)
	adminSvc := service.NewAdminService(bookingRepo)
	jobSvc := service.NewJobService(draftRepo, bookingRepo)

	catalogHandler := api.NewCatalogHandler(catalogRepo, slotSvc, bookingSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	authHandler := api.NewAuthHandler(authSvc)
	adminHandler := api.NewAdminHandler(adminSvc, catalogRepo)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/cities", catalogHandler.ListCities).Methods("GET")
	r.HandleFunc("/api/parking", catalogHandler.SearchParking).Methods("GET")
	r.HandleFunc("/api/parking/{id}", catalogHandler.GetParkingArea).Methods("GET")
	r.HandleFunc("/api/parking/{id}/slots", catalogHandler.GetParkingSlots).Methods("GET")
	r.HandleFunc("/api/quote", catalogHandler.GetQuote).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")

	// Booking flow: draft and confirmation work logged out, a token only
	// adds contact details for notifications.
	r.Handle("/api/bookings/draft",
		auth.OptionalAuthMiddleware(http.HandlerFunc(bookingHandler.CreateDraft))).Methods("POST")
	r.Handle("/api/bookings/confirm",
		auth.OptionalAuthMiddleware(http.HandlerFunc(bookingHandler.ConfirmBooking))).Methods("POST")
	r.HandleFunc("/api/bookings", bookingHandler.ListBookings).Methods("GET")
	r.HandleFunc("/api/bookings/{id}", bookingHandler.GetBooking).Methods("GET")
	r.HandleFunc("/api/bookings/{id}", bookingHandler.CancelBooking).Methods("DELETE")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/stats", adminHandler.GetStats).Methods("GET")
	admin.HandleFunc("/parking", adminHandler.ListParkingAreas).Methods("GET")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	c := cron.New()
	c.AddFunc("@every 5m", jobSvc.PurgeExpiredDrafts)
	c.AddFunc("@every 10m", func() {
		if err := jobSvc.CompleteFinishedBookings(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.Start()
	defer c.Stop()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, cors(handlers.LoggingHandler(os.Stdout, r))))
}
