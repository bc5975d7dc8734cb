package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"sync"
	"tutorat-service/internal/app/contracts"
	"tutorat-service/internal/app/drivers/mailer"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/dto/requests"
	"tutorat-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type mailerService struct {
	Client   *mailer.SMTPClient
	Log      *zap.Logger
	sendMail sendMailFunc
}

var (
	mailerServiceInstance contracts.MailerService
	onceMailerService     sync.Once
)

func NewMailerService(client *mailer.SMTPClient, logger *zap.Logger) contracts.MailerService {
	onceMailerService.Do(func() {
		mailerServiceInstance = newMailerService(client, logger, smtp.SendMail)
	})
	return mailerServiceInstance
}

func newMailerService(client *mailer.SMTPClient, logger *zap.Logger, send sendMailFunc) *mailerService {
	return &mailerService{
		Client:   client,
		Log:      logger,
		sendMail: send,
	}
}

func (svc *mailerService) SendHTMLEmail(ctx context.Context, request *requests.EmailPayload) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("mailerService.SendHTMLEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingEmailRecipientKey, request.To),
	)

	from := request.From
	if from == "" {
		from = svc.Client.EmailSender
	}

	msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLFormat, from, strings.Join(request.To, ", "), request.Subject, request.HTMLCode))
	recipients := append(append([]string{}, request.To...), request.Bcc...)
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)

	err := svc.sendMail(addr, svc.Client.Auth, from, recipients, msg)
	if err != nil {
		svc.Log.Error("mailerService.SendHTMLEmail error sending email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}

	svc.Log.Info("mailerService.SendHTMLEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
