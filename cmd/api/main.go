package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventboard/config"
	_ "eventboard/docs"
	"eventboard/internal/adapters/auth"
	"eventboard/internal/adapters/email"
	httpdelivery "eventboard/internal/delivery/http"
	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/location"
	"eventboard/internal/messaging"
	"eventboard/internal/repository/postgres"
	"eventboard/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title Eventboard API
// @version 1.0
// @description Event discovery and ticketing backend.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("database ping failed", "err", err)
		os.Exit(1)
	}
	logger.Info("database connected")

	rmq, err := messaging.NewClient(cfg.RabbitURL, cfg.RabbitExchange, cfg.RabbitQueue, logger)
	if err != nil {
		logger.Error("failed to connect to RabbitMQ", "err", err)
		os.Exit(1)
	}
	defer rmq.Close()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)

	regions := location.NewRegionIndex()

	userService := services.NewUserService(userRepo, regions, serviceTimeout)
	eventService := services.NewEventService(eventRepo, serviceTimeout)
	catalogService := services.NewCatalogService(eventRepo, serviceTimeout)
	attendeeService := services.NewAttendeeService(eventRepo, registrationRepo, rmq, logger, serviceTimeout)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	worker := messaging.NewRegistrationWorker(emailService, logger)
	if err := rmq.Consume(worker.Handle); err != nil {
		logger.Error("failed to start registration worker", "err", err)
		os.Exit(1)
	}

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	catalogController := controllers.NewCatalogController(logger, catalogService, regions)
	eventController := controllers.NewEventController(logger, eventService, userService)
	userController := controllers.NewUserController(logger, userService)
	attendeeController := controllers.NewAttendeeController(logger, attendeeService, userService)

	mux := httpdelivery.NewRouter(
		catalogController,
		eventController,
		userController,
		attendeeController,
		middleware.RequireAuth(verifier, logger),
	)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-signalChan:
		logger.Info("received signal, shutting down", "signal", sig.String())
	case err := <-serverErrChan:
		logger.Error("server error", "err", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutting down server", "err", err)
	}

	logger.Info("shutdown complete")
}
