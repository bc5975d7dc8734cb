package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	"tutorat-service/internal/app/config"
	"tutorat-service/internal/app/models"
	"tutorat-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePublisher struct {
	err       error
	queue     string
	published []amqp091.Publishing
}

func (p *fakePublisher) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp091.Publishing) error {
	p.queue = key
	p.published = append(p.published, msg)
	return p.err
}

type fakeAcknowledger struct {
	mu      sync.Mutex
	acked   int
	nacked  int
	requeue []bool
}

func (a *fakeAcknowledger) Ack(uint64, bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.acked++
	return nil
}

func (a *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nacked++
	a.requeue = append(a.requeue, requeue)
	return nil
}

func (a *fakeAcknowledger) Reject(_ uint64, requeue bool) error {
	return a.Nack(0, false, requeue)
}

type fakeConsumer struct {
	deliveries chan amqp091.Delivery
	prefetch   int
}

func (c *fakeConsumer) Qos(prefetchCount, _ int, _ bool) error {
	c.prefetch = prefetchCount
	return nil
}

func (c *fakeConsumer) ConsumeWithContext(context.Context, string, string, bool, bool, bool, bool, amqp091.Table) (<-chan amqp091.Delivery, error) {
	return c.deliveries, nil
}

type MockMailerService struct {
	mock.Mock
}

func (m *MockMailerService) SendHTMLEmail(ctx context.Context, request *requests.EmailPayload) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func sampleBooking() *models.Booking {
	start := time.Date(2025, 1, 15, 14, 0, 0, 0, time.UTC)
	return &models.Booking{
		ID:         "b-1",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Duration:   models.DurationShort,
		Status:     models.BookingStatusConfirmed,
		FirstName:  "Camille",
		LastName:   "Tremblay",
		Email:      "camille@example.com",
		Phone:      "5145550123",
		GradeLevel: "secondaire-2",
		Location:   "online",
		Price:      50,
	}
}

func testWorker(channel consumer, mailerService *MockMailerService, enabled bool) *Worker {
	return NewWorker(channel, mailerService, enabled, &config.InternalConfig{
		Mailer:   config.AppMailer{EmailSender: "noreply@tutoratreussite.ca", AdminEmail: "admin@tutoratreussite.ca", SendsPerSecond: 100},
		RabbitMQ: config.AppRabbitMQ{MailerQueue: "tutorat_mailer"},
	}, time.UTC, zap.NewNop())
}

func newDelivery(t *testing.T, ack *fakeAcknowledger, body any) amqp091.Delivery {
	t.Helper()
	raw, ok := body.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}
	return amqp091.Delivery{Acknowledger: ack, Body: raw, MessageId: "b-1"}
}

func TestPublishBookingConfirmation(t *testing.T) {
	pub := &fakePublisher{}
	svc := newNotificationService(pub, "tutorat_mailer", zap.NewNop())

	err := svc.PublishBookingConfirmation(context.Background(), sampleBooking())
	require.NoError(t, err)

	require.Len(t, pub.published, 1)
	msg := pub.published[0]
	assert.Equal(t, "tutorat_mailer", pub.queue)
	assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
	assert.Equal(t, "b-1", msg.MessageId)
	assert.Equal(t, "DROP", msg.Headers["requeue_strategy"])

	var decoded requests.BookingConfirmationMessage
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "Camille Tremblay", decoded.FullName)
	assert.Equal(t, "1h", decoded.Duration)
	assert.Equal(t, 50, decoded.Price)
}

func TestPublishBookingConfirmation_BrokerError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("channel closed")}
	svc := newNotificationService(pub, "tutorat_mailer", zap.NewNop())

	err := svc.PublishBookingConfirmation(context.Background(), sampleBooking())
	assert.Error(t, err)
}

func TestWorker_SendsAndAcks(t *testing.T) {
	mailerService := new(MockMailerService)
	mailerService.On("SendHTMLEmail", mock.Anything, mock.MatchedBy(func(p *requests.EmailPayload) bool {
		return len(p.To) == 1 && p.To[0] == "camille@example.com" &&
			len(p.Bcc) == 1 && p.Bcc[0] == "admin@tutoratreussite.ca"
	})).Return(nil).Once()

	ack := &fakeAcknowledger{}
	w := testWorker(&fakeConsumer{}, mailerService, true)
	w.handleDelivery(context.Background(), newDelivery(t, ack, bookingConfirmationMessage(sampleBooking())))

	mailerService.AssertExpectations(t)
	assert.Equal(t, 1, ack.acked)
	assert.Equal(t, 0, ack.nacked)
}

func TestWorker_SkipsWhenMailerDisabled(t *testing.T) {
	mailerService := new(MockMailerService)
	ack := &fakeAcknowledger{}
	w := testWorker(&fakeConsumer{}, mailerService, false)

	w.handleDelivery(context.Background(), newDelivery(t, ack, bookingConfirmationMessage(sampleBooking())))

	mailerService.AssertNotCalled(t, "SendHTMLEmail", mock.Anything, mock.Anything)
	assert.Equal(t, 1, ack.acked)
}

func TestWorker_DropsMalformedMessage(t *testing.T) {
	ack := &fakeAcknowledger{}
	w := testWorker(&fakeConsumer{}, new(MockMailerService), true)

	w.handleDelivery(context.Background(), newDelivery(t, ack, []byte("{not json")))

	assert.Equal(t, 1, ack.nacked)
	assert.Equal(t, []bool{false}, ack.requeue)
}

func TestWorker_RequeuesOnceOnSendFailure(t *testing.T) {
	mailerService := new(MockMailerService)
	mailerService.On("SendHTMLEmail", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	ack := &fakeAcknowledger{}
	w := testWorker(&fakeConsumer{}, mailerService, true)

	first := newDelivery(t, ack, bookingConfirmationMessage(sampleBooking()))
	w.handleDelivery(context.Background(), first)

	second := first
	second.Redelivered = true
	w.handleDelivery(context.Background(), second)

	assert.Equal(t, []bool{true, false}, ack.requeue)
}

func TestWorker_RunStopsWhenChannelCloses(t *testing.T) {
	mailerService := new(MockMailerService)
	mailerService.On("SendHTMLEmail", mock.Anything, mock.Anything).Return(nil)

	ack := &fakeAcknowledger{}
	deliveries := make(chan amqp091.Delivery, 2)
	deliveries <- newDelivery(t, ack, bookingConfirmationMessage(sampleBooking()))
	deliveries <- newDelivery(t, ack, bookingConfirmationMessage(sampleBooking()))
	close(deliveries)

	channel := &fakeConsumer{deliveries: deliveries}
	w := testWorker(channel, mailerService, true)

	require.NoError(t, w.Run(context.Background()))
	assert.Equal(t, 8, channel.prefetch)
	assert.Equal(t, 2, ack.acked)
}
