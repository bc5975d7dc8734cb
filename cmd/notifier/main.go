package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	"tutorat-service/internal/app/config"
	"tutorat-service/internal/app/drivers/logger"
	mailerDriver "tutorat-service/internal/app/drivers/mailer"
	"tutorat-service/internal/app/drivers/messaging"
	"tutorat-service/internal/app/services/shared/mailer"
	"tutorat-service/internal/app/services/shared/notifier"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger := logger.NewZapLogger(internalConfig, constvars.AppComponentNotifier)

	location, err := utils.LoadTimezone(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}

	connection := messaging.NewRabbitMQ(driverConfig)
	bootstrap := &config.Bootstrap{
		Logger:         logger,
		RabbitMQ:       connection,
		Location:       location,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	queue := internalConfig.RabbitMQ.MailerQueue
	err = messaging.DeclareQueue(connection, queue)
	if err != nil {
		log.Fatalf("Error declaring queue %s: %v", queue, err)
	}

	channel, err := connection.Channel()
	if err != nil {
		log.Fatalf("Error opening channel: %v", err)
	}

	smtpClient := mailerDriver.NewSMTPClient(driverConfig)
	if internalConfig.Mailer.EmailSender == "" {
		internalConfig.Mailer.EmailSender = smtpClient.EmailSender
	}
	if !smtpClient.IsConfigured() {
		logger.Warn("SMTP credentials missing, confirmation emails will be logged and skipped")
	}

	worker := notifier.NewWorker(
		channel,
		mailer.NewMailerService(smtpClient, logger),
		smtpClient.IsConfigured(),
		internalConfig,
		location,
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	bootstrap.WorkerStop = func() {
		stop()
		<-done
	}

	go func() {
		defer close(done)
		err := worker.Run(ctx)
		if err != nil {
			logger.Error("Worker stopped with error", zap.Error(err))
		}
	}()

	logger.Info("Notifier started", zap.String("queue", queue))
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing resources: %v", err)
	}

	log.Println("Notifier exiting")
}
