package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hospital-service/internal/api/http"
	"github.com/spec-kit/hospital-service/internal/api/http/handlers"
	"github.com/spec-kit/hospital-service/internal/auth"
	"github.com/spec-kit/hospital-service/internal/config"
	"github.com/spec-kit/hospital-service/internal/events"
	"github.com/spec-kit/hospital-service/internal/observability"
	"github.com/spec-kit/hospital-service/internal/payment"
	"github.com/spec-kit/hospital-service/internal/persistence"
	"github.com/spec-kit/hospital-service/internal/repository"
	"github.com/spec-kit/hospital-service/internal/service"
	"github.com/spec-kit/hospital-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecretBase64, cfg.Auth.TokenTTLHours)
	if err != nil {
		logger.Fatal("failed to init token manager", zap.Error(err))
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	patientRepo := repository.NewPatientRepository(pool)
	doctorRepo := repository.NewDoctorRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)
	prescriptionRepo := repository.NewPrescriptionRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	gateway := payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.Secret, cfg.Razorpay.Timeout())
	verifier := payment.NewService(gateway, cfg.Razorpay, logger)

	authService := service.NewAuthService(userRepo, doctorRepo, tokens)
	patientService := service.NewPatientService(userRepo, patientRepo, cfg.Auth.BcryptCost)
	doctorService := service.NewDoctorService(userRepo, doctorRepo, redis.Client, logger, cfg.Auth.BcryptCost)
	appointmentService := service.NewAppointmentService(appointmentRepo, doctorRepo, dispatcher)
	prescriptionService := service.NewPrescriptionService(prescriptionRepo, dispatcher)
	paymentService := service.NewPaymentService(verifier, prescriptionRepo, dispatcher, logger)
	feedbackService := service.NewFeedbackService(feedbackRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:        logger,
		Metrics:       metrics,
		Timeout:       cfg.App.RequestTimeout(),
		CORS:          cfg.CORS,
		Authenticator: auth.NewAuthenticator(tokens, logger),
		Policy:        auth.DefaultPolicy(),
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:          handlers.NewAuthHandler(authService, logger),
		Patients:      handlers.NewPatientsHandler(patientService),
		Doctors:       handlers.NewDoctorsHandler(doctorService),
		Admin:         handlers.NewAdminHandler(),
		Appointments:  handlers.NewAppointmentsHandler(appointmentService),
		Prescriptions: handlers.NewPrescriptionsHandler(prescriptionService, paymentService),
		Payments:      handlers.NewPaymentsHandler(paymentService),
		Feedback:      handlers.NewFeedbackHandler(feedbackService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
