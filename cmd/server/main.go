package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"fitclub/internal/api"
	"fitclub/internal/app"
	"fitclub/internal/auth"
	"fitclub/internal/cache"
	"fitclub/internal/config"
	"fitclub/internal/repository"
	"fitclub/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Env)
	defer logger.Sync()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	migrator, err := app.NewMigrator(db, cfg.MigrationsPath)
	if err != nil {
		log.Fatalf("Failed to create migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var scheduleCache *cache.ScheduleCache
	if cfg.RedisURL != "" {
		scheduleCache, err = cache.NewScheduleCache(cfg.RedisURL, cfg.CacheTTL, logger)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	} else {
		logger.Info("REDIS_URL not set, schedule cache disabled")
	}

	var paymentService *service.PaymentService
	if cfg.StripeKey != "" {
		stripe.Key = cfg.StripeKey
		paymentService = service.NewPaymentService()
	} else {
		logger.Info("STRIPE_SECRET_KEY not set, online payments disabled")
	}

	trainerRepo := repository.NewTrainerRepository(db)
	clientRepo := repository.NewClientRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	adminAuthRepo := repository.NewAdminAuthRepository(db)
	jobRepo := repository.NewJobRepository(db)

	senderService := service.NewSenderService()
	bookingService := service.NewBookingService(bookingRepo, trainerRepo, clientRepo,
		paymentService, senderService, scheduleCache, logger)
	trainerService := service.NewTrainerService(trainerRepo, scheduleCache, logger)
	importService := service.NewImportService(trainerRepo, clientRepo, logger)
	adminAuthService := service.NewAdminAuthService(adminAuthRepo)
	jobService := service.NewJobService(jobRepo)

	bookingHandler := api.NewBookingHandler(bookingService)
	trainerHandler := api.NewTrainerHandler(trainerService)
	adminHandler := api.NewAdminHandler(bookingService, trainerService, importService)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthService)
	stripeHandler := api.NewStripeWebhookHandler(cfg.StripeWebhookSecret, bookingService)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/trainers", trainerHandler.ListTrainers).Methods("GET")
	r.HandleFunc("/api/trainers/{id}", trainerHandler.GetTrainer).Methods("GET")
	r.HandleFunc("/api/trainers/{id}/working-hours", trainerHandler.GetWorkingHours).Methods("GET")
	r.HandleFunc("/api/trainers/{id}/slots", bookingHandler.GetSlots).Methods("GET")
	r.HandleFunc("/api/trainers/{id}/bookings", bookingHandler.ListTrainerBookings).Methods("GET")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{code}", bookingHandler.GetBooking).Methods("GET")
	r.HandleFunc("/api/bookings/{code}", bookingHandler.CancelBooking).Methods("DELETE")
	r.HandleFunc("/api/stripe/webhook", stripeHandler.HandleWebhook).Methods("POST")
	r.HandleFunc("/api/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/bookings/{code}/status", adminHandler.UpdateBookingStatus).Methods("PUT")
	admin.HandleFunc("/trainers", adminHandler.CreateTrainer).Methods("POST")
	admin.HandleFunc("/trainers/{id}", adminHandler.DeleteTrainer).Methods("DELETE")
	admin.HandleFunc("/trainers/{id}/status", adminHandler.UpdateTrainerStatus).Methods("PUT")
	admin.HandleFunc("/trainers/{id}/working-hours", adminHandler.UpdateWorkingHours).Methods("PUT")
	admin.HandleFunc("/import/validate", adminHandler.ValidateImport).Methods("POST")
	admin.HandleFunc("/admins", adminAuthHandler.CreateUserAdmin).Methods("POST")

	c := cron.New()
	c.AddFunc("*/15 * * * *", func() {
		if err := jobService.CompletePastBookings(); err != nil {
			logger.Error("completing past bookings failed", zap.Error(err))
		}
	})
	c.AddFunc("0 * * * *", func() {
		if n, err := jobService.DeleteStalePendingPayments(24); err != nil {
			logger.Error("deleting stale pending payments failed", zap.Error(err))
		} else if n > 0 {
			logger.Info("deleted stale pending payments", zap.Int64("count", n))
		}
	})
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
