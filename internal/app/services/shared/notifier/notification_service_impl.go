package notifier

import (
	"context"
	"sync"
	"tutorat-service/internal/app/contracts"
	"tutorat-service/internal/app/models"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/dto/requests"
	"tutorat-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type notificationService struct {
	Channel publisher
	Queue   string
	Log     *zap.Logger
}

var (
	notificationServiceInstance contracts.NotificationService
	onceNotificationService     sync.Once
	notificationServiceError    error
)

func NewNotificationService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.NotificationService, error) {
	onceNotificationService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			notificationServiceError = err
			return
		}
		notificationServiceInstance = newNotificationService(channel, queue, logger)
	})
	return notificationServiceInstance, notificationServiceError
}

func newNotificationService(channel publisher, queue string, logger *zap.Logger) *notificationService {
	return &notificationService{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (s *notificationService) PublishBookingConfirmation(ctx context.Context, booking *models.Booking) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("notificationService.PublishBookingConfirmation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)

	body, err := json.Marshal(bookingConfirmationMessage(booking))
	if err != nil {
		s.Log.Error("notificationService.PublishBookingConfirmation error marshalling message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Type:         constvars.AppNotificationQueueType,
		MessageId:    booking.ID,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers: amqp091.Table{
			"message_type":     constvars.MailerMessageTypeJSON,
			"requeue_strategy": constvars.MailerRequeueStrategyDrop,
		},
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("notificationService.PublishBookingConfirmation error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("notificationService.PublishBookingConfirmation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
	)
	return nil
}

func bookingConfirmationMessage(booking *models.Booking) *requests.BookingConfirmationMessage {
	return &requests.BookingConfirmationMessage{
		BookingID:  booking.ID,
		FullName:   booking.FullName(),
		Email:      booking.Email,
		Phone:      booking.Phone,
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		Duration:   booking.Duration.String(),
		GradeLevel: booking.GradeLevel,
		Location:   booking.Location,
		Address:    booking.Address,
		Notes:      booking.Notes,
		Price:      booking.Price,
	}
}
