package notifier

import (
	"context"
	"fmt"
	"time"
	"tutorat-service/internal/app/config"
	"tutorat-service/internal/app/contracts"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/dto/requests"
	"tutorat-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type consumer interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	ConsumeWithContext(ctx context.Context, queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error)
}

// Worker drains the confirmation queue and sends one email per message.
type Worker struct {
	Channel       consumer
	Queue         string
	Mailer        contracts.MailerService
	MailerEnabled bool
	Sender        string
	AdminEmail    string
	Prefetch      int
	Location      *time.Location
	Limiter       *rate.Limiter
	Log           *zap.Logger
}

func NewWorker(channel consumer, mailerService contracts.MailerService, mailerEnabled bool, internalConfig *config.InternalConfig, location *time.Location, logger *zap.Logger) *Worker {
	sendsPerSecond := internalConfig.Mailer.SendsPerSecond
	if sendsPerSecond <= 0 {
		sendsPerSecond = constvars.MailerDefaultSendsPerSecond
	}
	prefetch := internalConfig.Mailer.PrefetchCount
	if prefetch <= 0 {
		prefetch = constvars.MailerDefaultPrefetchCount
	}

	return &Worker{
		Channel:       channel,
		Queue:         internalConfig.RabbitMQ.MailerQueue,
		Mailer:        mailerService,
		MailerEnabled: mailerEnabled,
		Sender:        internalConfig.Mailer.EmailSender,
		AdminEmail:    internalConfig.Mailer.AdminEmail,
		Prefetch:      prefetch,
		Location:      location,
		Limiter:       rate.NewLimiter(rate.Limit(sendsPerSecond), 1),
		Log:           logger,
	}
}

// Run consumes until ctx is done or the delivery channel closes.
func (w *Worker) Run(ctx context.Context) error {
	if err := w.Channel.Qos(w.Prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos failed: %w", err)
	}

	deliveries, err := w.Channel.ConsumeWithContext(ctx, w.Queue, constvars.AppServiceName, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume failed: %w", err)
	}

	w.Log.Info("Worker.Run consuming",
		zap.String(constvars.LoggingQueueNameKey, w.Queue),
		zap.Bool("mailer_enabled", w.MailerEnabled),
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			w.handleDelivery(ctx, delivery)
		}
	}
}

func (w *Worker) handleDelivery(ctx context.Context, delivery amqp091.Delivery) {
	logFields := []zap.Field{
		zap.String(constvars.LoggingMessageIDKey, delivery.MessageId),
		zap.String(constvars.LoggingQueueNameKey, w.Queue),
	}

	var message requests.BookingConfirmationMessage
	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		w.Log.Error("Worker.handleDelivery dropping malformed message", append(logFields, zap.Error(err))...)
		_ = delivery.Nack(false, false)
		return
	}
	logFields = append(logFields, zap.String(constvars.LoggingBookingIDKey, message.BookingID))

	if !w.MailerEnabled {
		w.Log.Warn("Worker.handleDelivery SMTP credentials missing, skipping email", logFields...)
		_ = delivery.Ack(false)
		return
	}

	if err := w.Limiter.Wait(ctx); err != nil {
		_ = delivery.Nack(false, true)
		return
	}

	payload := utils.BuildBookingConfirmationEmailPayload(w.Sender, &message, w.Location)
	if w.AdminEmail != "" {
		payload.Bcc = []string{w.AdminEmail}
	}

	if err := w.Mailer.SendHTMLEmail(ctx, payload); err != nil {
		requeue := !delivery.Redelivered
		w.Log.Error("Worker.handleDelivery error sending email",
			append(logFields, zap.Bool("requeue", requeue), zap.Error(err))...)
		_ = delivery.Nack(false, requeue)
		return
	}

	w.Log.Info("Worker.handleDelivery email sent", logFields...)
	_ = delivery.Ack(false)
}
