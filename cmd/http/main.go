package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"tutorat-service/internal/app/config"
	"tutorat-service/internal/app/contracts"
	"tutorat-service/internal/app/delivery/http/controllers"
	"tutorat-service/internal/app/delivery/http/middlewares"
	"tutorat-service/internal/app/delivery/http/routers"
	"tutorat-service/internal/app/drivers/database"
	"tutorat-service/internal/app/drivers/logger"
	"tutorat-service/internal/app/drivers/messaging"
	"tutorat-service/internal/app/services/core/bookings"
	"tutorat-service/internal/app/services/core/pricing"
	"tutorat-service/internal/app/services/core/timeslots"
	"tutorat-service/internal/app/services/shared/locker"
	"tutorat-service/internal/app/services/shared/notifier"
	redisRepository "tutorat-service/internal/app/services/shared/redis"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger := logger.NewZapLogger(internalConfig, constvars.AppComponentHTTP)

	location, err := utils.LoadTimezone(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Postgres:       database.NewPostgresDB(driverConfig),
		Logger:         logger,
		Location:       location,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if internalConfig.Booking.DayLockEnabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if internalConfig.App.NotificationEnabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		logger.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Locker
	var lockerService contracts.LockerService
	if bootstrap.Redis != nil {
		lockerService = locker.NewLockService(redisRepository.NewRedisRepository(bootstrap.Redis), bootstrap.Logger)
	}

	// Notification
	var notificationService contracts.NotificationService
	if bootstrap.RabbitMQ != nil {
		queue := bootstrap.InternalConfig.RabbitMQ.MailerQueue
		err := messaging.DeclareQueue(bootstrap.RabbitMQ, queue)
		if err != nil {
			return err
		}
		notificationService, err = notifier.NewNotificationService(bootstrap.RabbitMQ, queue, bootstrap.Logger)
		if err != nil {
			return err
		}
	}

	// Bookings
	bookingRepository := bookings.NewBookingPostgresRepository(bootstrap.Postgres, bootstrap.Location, bootstrap.Logger)
	bookingUsecase, err := bookings.NewBookingUsecase(
		bookingRepository,
		lockerService,
		notificationService,
		timeslots.DefaultCatalog(),
		bootstrap.InternalConfig,
		bootstrap.Location,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}

	// Completion sweep
	if spec := bootstrap.InternalConfig.Booking.AutoCompleteCronSpec; spec != "" {
		completionWorker := bookings.NewCompletionWorker(bootstrap.Logger, lockerService, bookingRepository, spec)
		completionWorker.Start(context.Background())
		bootstrap.WorkerStop = completionWorker.Stop
	}

	// Pricing
	pricingUsecase := pricing.NewPricingUsecase(bootstrap.Logger)

	// Health
	checks := map[string]controllers.HealthCheck{
		"postgres": bootstrap.Postgres.PingContext,
	}
	if bootstrap.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return bootstrap.Redis.Ping(ctx).Err()
		}
	}
	if bootstrap.RabbitMQ != nil {
		checks["rabbitmq"] = func(context.Context) error {
			if bootstrap.RabbitMQ.IsClosed() {
				return errors.New("rabbitmq connection closed")
			}
			return nil
		}
	}

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig),
		controllers.NewBookingController(bootstrap.Logger, bookingUsecase, bootstrap.Location),
		controllers.NewTimeSlotController(bootstrap.Logger, bookingUsecase, bootstrap.Location),
		controllers.NewPricingController(bootstrap.Logger, pricingUsecase),
		controllers.NewHealthController(bootstrap.Logger, checks),
	)
	return nil
}
