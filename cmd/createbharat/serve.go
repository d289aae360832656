// cmd/createbharat/serve.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/ajaypanchal761/createbharat-sub000/internal/config"
	"github.com/ajaypanchal761/createbharat-sub000/internal/email"
	"github.com/ajaypanchal761/createbharat-sub000/internal/handler"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/payment"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
	"github.com/ajaypanchal761/createbharat-sub000/internal/sms"
	"github.com/ajaypanchal761/createbharat-sub000/internal/storage"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func runServer() error {
	// Initialize structured logger
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(slogger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize MongoDB for resume storage
	mongoClient, err := setupMongo(cfg)
	if err != nil {
		return fmt.Errorf("setting up mongo: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			slogger.Error("mongo disconnect failed", "error", err)
		}
	}()

	resumeStore, err := storage.NewGridFSStore(mongoClient.Database(cfg.Mongo.Database), "resumes")
	if err != nil {
		return fmt.Errorf("setting up resume store: %w", err)
	}

	// Initialize external adapters
	mediaStore, err := storage.NewCloudinaryStore(cfg.Cloudinary.URL)
	if err != nil {
		return fmt.Errorf("setting up media store: %w", err)
	}

	gateway := payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	smsSender := sms.NewTwilioSender(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.From)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	mentorRepo := repository.NewMentorRepository(db)
	caRepo := repository.NewCARepository(db)
	adminRepo := repository.NewAdminRepository(db)
	internshipRepo := repository.NewInternshipRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	loanRepo := repository.NewLoanSchemeRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	legalRepo := repository.NewLegalRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	marketingRepo := repository.NewMarketingRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize services
	principalService := service.NewPrincipalService(userRepo, companyRepo, mentorRepo, caRepo, adminRepo)
	userService := service.NewUserService(userRepo, passwordHasher, tokenManager, emailService, smsSender, cfg)
	companyService := service.NewCompanyService(companyRepo, passwordHasher, tokenManager, mediaStore)
	mentorService := service.NewMentorService(mentorRepo, passwordHasher, tokenManager, mediaStore)
	caService := service.NewCAService(caRepo, passwordHasher, tokenManager)
	adminService := service.NewAdminService(adminRepo, passwordHasher, tokenManager)
	internshipService := service.NewInternshipService(internshipRepo, companyRepo)
	applicationService := service.NewApplicationService(applicationRepo, internshipRepo, companyRepo, userRepo, resumeStore, emailService)
	loanService := service.NewLoanService(loanRepo)
	bookingService := service.NewBookingService(bookingRepo, mentorRepo, gateway, emailService)
	legalService := service.NewLegalService(legalRepo, gateway, mediaStore, emailService)
	trainingService := service.NewTrainingService(trainingRepo, gateway)
	marketingService := service.NewMarketingService(marketingRepo, mediaStore)
	dashboardService := service.NewDashboardService(
		userRepo,
		companyRepo,
		mentorRepo,
		internshipRepo,
		applicationRepo,
		bookingRepo,
		legalRepo,
		trainingRepo,
		marketingRepo,
	)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	companyHandler := handler.NewCompanyHandler(companyService)
	mentorHandler := handler.NewMentorHandler(mentorService)
	caHandler := handler.NewCAHandler(caService)
	adminHandler := handler.NewAdminHandler(adminService, dashboardService, companyService, mentorService)
	internshipHandler := handler.NewInternshipHandler(internshipService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	loanHandler := handler.NewLoanHandler(loanService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	legalHandler := handler.NewLegalHandler(legalService)
	trainingHandler := handler.NewTrainingHandler(trainingService)
	marketingHandler := handler.NewMarketingHandler(marketingService)

	r := buildRouter(routerDeps{
		logger:       slogger,
		tokenManager: tokenManager,
		principals:   principalService,
		users:        userHandler,
		companies:    companyHandler,
		mentors:      mentorHandler,
		cas:          caHandler,
		admins:       adminHandler,
		internships:  internshipHandler,
		applications: applicationHandler,
		loans:        loanHandler,
		bookings:     bookingHandler,
		legal:        legalHandler,
		training:     trainingHandler,
		marketing:    marketingHandler,
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		slogger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slogger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return db, nil
}

// migrate keeps the schema in sync. Uniqueness of emails, phone numbers and
// usernames is enforced here by index, not by application checks.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Mentor{},
		&model.CharteredAccountant{},
		&model.Admin{},
		&model.Internship{},
		&model.Application{},
		&model.LoanScheme{},
		&model.MentorBooking{},
		&model.LegalService{},
		&model.LegalSubmission{},
		&model.SubmissionDocument{},
		&model.TrainingCourse{},
		&model.TrainingModule{},
		&model.TrainingTopic{},
		&model.TrainingQuiz{},
		&model.QuizQuestion{},
		&model.UserTrainingProgress{},
		&model.Banner{},
		&model.BankLead{},
		&model.WebDevelopmentLead{},
	)
}

func setupMongo(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	return client, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						"error", errors.New("panic recovered"),
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"ok":false,"error":"Internal server error"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
