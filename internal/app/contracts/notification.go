package contracts

import (
	"context"
	"tutorat-service/internal/app/models"
	"tutorat-service/internal/pkg/dto/requests"
)

// NotificationService hands a confirmed booking to the delivery pipeline.
type NotificationService interface {
	PublishBookingConfirmation(ctx context.Context, booking *models.Booking) error
}

type MailerService interface {
	SendHTMLEmail(ctx context.Context, request *requests.EmailPayload) error
}
