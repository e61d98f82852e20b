package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dricebeauty/clinic-api/internal/config"
	"github.com/dricebeauty/clinic-api/internal/email"
	"github.com/dricebeauty/clinic-api/internal/handler"
	apptHandler "github.com/dricebeauty/clinic-api/internal/handler/appointment"
	authHandler "github.com/dricebeauty/clinic-api/internal/handler/auth"
	catalogHandler "github.com/dricebeauty/clinic-api/internal/handler/catalog"
	checkoutHandler "github.com/dricebeauty/clinic-api/internal/handler/checkout"
	patientHandler "github.com/dricebeauty/clinic-api/internal/handler/patient"
	recordHandler "github.com/dricebeauty/clinic-api/internal/handler/record"
	staffHandler "github.com/dricebeauty/clinic-api/internal/handler/staff"
	"github.com/dricebeauty/clinic-api/internal/middleware"
	"github.com/dricebeauty/clinic-api/internal/repository/postgres"
	"github.com/dricebeauty/clinic-api/internal/router"
	appointmentService "github.com/dricebeauty/clinic-api/internal/service/appointment"
	authService "github.com/dricebeauty/clinic-api/internal/service/auth"
	catalogService "github.com/dricebeauty/clinic-api/internal/service/catalog"
	checkoutService "github.com/dricebeauty/clinic-api/internal/service/checkout"
	patientService "github.com/dricebeauty/clinic-api/internal/service/patient"
	recordService "github.com/dricebeauty/clinic-api/internal/service/record"
	staffService "github.com/dricebeauty/clinic-api/internal/service/staff"
	"github.com/dricebeauty/clinic-api/pkg/auth"
	"github.com/dricebeauty/clinic-api/pkg/logger"
	"github.com/dricebeauty/clinic-api/pkg/security"
	"github.com/dricebeauty/clinic-api/pkg/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Pretty)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	photoStore, err := storage.NewLocalStorage(cfg.Storage.Root)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize photo storage")
	}

	// Repositories
	patientRepo := postgres.NewPatientRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	txnRepo := postgres.NewTransactionRepository(db)
	apptRepo := postgres.NewAppointmentRepository(db)
	staffRepo := postgres.NewStaffRepository(db)
	noteRepo := postgres.NewDoctorNoteRepository(db)
	photoRepo := postgres.NewPatientPhotoRepository(db)
	visitRepo := postgres.NewVisitRepository(db)

	// Services
	hasher := security.NewBcryptHasher(0)
	jwtSvc := auth.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.RefreshSecret,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
		time.Duration(cfg.JWT.RefreshExpiryHours)*time.Hour,
	)
	sender := email.NewSender(cfg.SMTP)

	patientSvc := patientService.NewService(patientRepo)
	catalogSvc := catalogService.NewService(serviceRepo)
	checkoutSvc := checkoutService.NewService(txnRepo, serviceRepo, patientRepo)
	apptSvc := appointmentService.NewService(apptRepo, patientRepo, serviceRepo, sender)
	staffSvc := staffService.NewService(staffRepo, hasher)
	recordSvc := recordService.NewService(noteRepo, photoRepo, patientRepo, visitRepo, photoStore)
	authSvc := authService.NewService(staffRepo, hasher, jwtSvc)

	// HTTP surface
	handler.RegisterValidations()
	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	h := handler.NewHandler(db)

	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		h,
		router.Config{
			RateLimitRPS:   50,
			RateLimitBurst: 100,
		},
		patientHandler.NewHandler(patientSvc),
		catalogHandler.NewHandler(catalogSvc),
		checkoutHandler.NewHandler(checkoutSvc),
		apptHandler.NewHandler(apptSvc),
		staffHandler.NewHandler(staffSvc),
		recordHandler.NewHandler(recordSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	log.Info().Int("port", cfg.Server.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
