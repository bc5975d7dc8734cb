package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"tutorat-service/internal/app/config"
	"tutorat-service/internal/app/delivery/http/controllers"
	"tutorat-service/internal/app/delivery/http/middlewares"
	"tutorat-service/internal/app/models"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/dto/requests"
	"tutorat-service/internal/pkg/dto/responses"
	"tutorat-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testAPIKey    = "test-superadmin-api-key-12345"
	testBookingID = "0b0f6d1e-8c55-4a0e-9d7c-3d1f2b6c9a10"
)

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) FreeWindows(ctx context.Context, date time.Time, duration models.DurationLabel) ([]responses.TimeSlot, error) {
	args := m.Called(ctx, date, duration)
	slots, _ := args.Get(0).([]responses.TimeSlot)
	return slots, args.Error(1)
}

func (m *MockBookingUsecase) FreeWindowsAnyDuration(ctx context.Context, date time.Time) ([]responses.TimeSlotWithDuration, error) {
	args := m.Called(ctx, date)
	slots, _ := args.Get(0).([]responses.TimeSlotWithDuration)
	return slots, args.Error(1)
}

func (m *MockBookingUsecase) CheckOverlap(ctx context.Context, start, end time.Time) (*responses.Availability, error) {
	args := m.Called(ctx, start, end)
	availability, _ := args.Get(0).(*responses.Availability)
	return availability, args.Error(1)
}

func (m *MockBookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBookingResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.CreateBookingResult)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) CancelBooking(ctx context.Context, bookingID string) (*responses.Booking, error) {
	args := m.Called(ctx, bookingID)
	booking, _ := args.Get(0).(*responses.Booking)
	return booking, args.Error(1)
}

func (m *MockBookingUsecase) CompleteBooking(ctx context.Context, bookingID string) (*responses.Booking, error) {
	args := m.Called(ctx, bookingID)
	booking, _ := args.Get(0).(*responses.Booking)
	return booking, args.Error(1)
}

func (m *MockBookingUsecase) FindAll(ctx context.Context) ([]responses.Booking, error) {
	args := m.Called(ctx)
	bookings, _ := args.Get(0).([]responses.Booking)
	return bookings, args.Error(1)
}

func (m *MockBookingUsecase) FindByID(ctx context.Context, bookingID string) (*responses.Booking, error) {
	args := m.Called(ctx, bookingID)
	booking, _ := args.Get(0).(*responses.Booking)
	return booking, args.Error(1)
}

type MockPricingUsecase struct {
	mock.Mock
}

func (m *MockPricingUsecase) GetPricing(ctx context.Context, gradeBand, location string) (*responses.Pricing, error) {
	args := m.Called(ctx, gradeBand, location)
	pricing, _ := args.Get(0).(*responses.Pricing)
	return pricing, args.Error(1)
}

type testServer struct {
	router  *chi.Mux
	booking *MockBookingUsecase
	pricing *MockPricingUsecase
}

func newTestServer(t *testing.T, checks map[string]controllers.HealthCheck) *testServer {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:   "api",
			Version:          "v1",
			SuperadminAPIKey: testAPIKey,
		},
	}

	bookingUsecase := new(MockBookingUsecase)
	pricingUsecase := new(MockPricingUsecase)

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewBookingController(logger, bookingUsecase, time.UTC),
		controllers.NewTimeSlotController(logger, bookingUsecase, time.UTC),
		controllers.NewPricingController(logger, pricingUsecase),
		controllers.NewHealthController(logger, checks),
	)

	return &testServer{router: router, booking: bookingUsecase, pricing: pricingUsecase}
}

func (s *testServer) do(method, path string, body []byte, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set(constvars.HeaderAPIKey, apiKey)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func validBookingBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(requests.CreateBooking{
		StartTime:  "2025-01-15T09:00:00Z",
		Duration:   "1h30",
		FirstName:  "Camille",
		LastName:   "Tremblay",
		Email:      "camille@example.com",
		Phone:      "5145550123",
		GradeLevel: "primaire-4",
		Location:   "online",
	})
	require.NoError(t, err)
	return body
}

func TestBookingRouter_CreateBooking(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.booking.On("CreateBooking", mock.Anything, mock.AnythingOfType("*requests.CreateBooking")).Return(&responses.CreateBookingResult{
			Success: true,
			Booking: &responses.Booking{ID: testBookingID, Status: "confirmed"},
		}, nil)

		rr := s.do("POST", "/api/v1/bookings", validBookingBody(t), "")

		assert.Equal(t, http.StatusCreated, rr.Code)
		var result responses.CreateBookingResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.True(t, result.Success)
		assert.Equal(t, testBookingID, result.Booking.ID)
	})

	t.Run("Conflict", func(t *testing.T) {
		s := newTestServer(t, nil)
		next := time.Date(2025, 1, 15, 12, 30, 0, 0, time.UTC)
		s.booking.On("CreateBooking", mock.Anything, mock.Anything).Return(&responses.CreateBookingResult{
			Success:       false,
			Message:       constvars.BookingConflictMessage,
			NextAvailable: &next,
		}, nil)

		rr := s.do("POST", "/api/v1/bookings", validBookingBody(t), "")

		assert.Equal(t, http.StatusConflict, rr.Code)
		var result responses.CreateBookingResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		require.NotNil(t, result.NextAvailable)
		assert.True(t, next.Equal(*result.NextAvailable))
	})

	t.Run("Invalid JSON Body", func(t *testing.T) {
		s := newTestServer(t, nil)
		rr := s.do("POST", "/api/v1/bookings", []byte("invalid json"), "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		s.booking.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("Validation Failure", func(t *testing.T) {
		s := newTestServer(t, nil)
		rr := s.do("POST", "/api/v1/bookings", []byte(`{"start_time":"2025-01-15T09:00:00Z","duration":"45m"}`), "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		s.booking.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("Transient Store Failure", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.booking.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, exceptions.ErrPostgresDBBeginTx(errors.New("connection reset")))

		rr := s.do("POST", "/api/v1/bookings", validBookingBody(t), "")

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Contains(t, rr.Body.String(), `"transient":true`)
	})
}

func TestBookingRouter_AdminEndpoints(t *testing.T) {
	t.Run("List Without API Key", func(t *testing.T) {
		s := newTestServer(t, nil)
		rr := s.do("GET", "/api/v1/bookings", nil, "")

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		s.booking.AssertNotCalled(t, "FindAll", mock.Anything)
	})

	t.Run("List With API Key", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.booking.On("FindAll", mock.Anything).Return([]responses.Booking{{ID: testBookingID}}, nil)

		rr := s.do("GET", "/api/v1/bookings", nil, testAPIKey)

		assert.Equal(t, http.StatusOK, rr.Code)
		s.booking.AssertExpectations(t)
	})

	t.Run("Find Unknown Booking", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.booking.On("FindByID", mock.Anything, testBookingID).Return(nil, exceptions.ErrBookingNotFound(nil, testBookingID))

		rr := s.do("GET", "/api/v1/bookings/"+testBookingID, nil, testAPIKey)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Cancel Booking", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.booking.On("CancelBooking", mock.Anything, testBookingID).Return(&responses.Booking{ID: testBookingID, Status: "cancelled"}, nil)

		rr := s.do("DELETE", "/api/v1/bookings/"+testBookingID, nil, testAPIKey)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"cancelled"`)
	})

	t.Run("Cancel With Malformed ID", func(t *testing.T) {
		s := newTestServer(t, nil)
		rr := s.do("DELETE", "/api/v1/bookings/not-a-uuid", nil, testAPIKey)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		s.booking.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything)
	})

	t.Run("Complete Cancelled Booking", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.booking.On("CompleteBooking", mock.Anything, testBookingID).Return(nil,
			exceptions.ErrBookingStatusTransition(nil, testBookingID, "cancelled", "completed"))

		rr := s.do("POST", "/api/v1/bookings/"+testBookingID+"/complete", nil, testAPIKey)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestAvailabilityRouter_CheckAvailability(t *testing.T) {
	s := newTestServer(t, nil)
	start := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	s.booking.On("CheckOverlap", mock.Anything, start, start.Add(90*time.Minute)).Return(&responses.Availability{Available: true}, nil)

	rr := s.do("POST", "/api/v1/availability", []byte(`{"start_time":"2025-01-15T09:00:00Z","duration":"1h30"}`), "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"available":true`)
	s.booking.AssertExpectations(t)
}

func TestTimeSlotRouter_FindFreeWindows(t *testing.T) {
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Missing Date", func(t *testing.T) {
		s := newTestServer(t, nil)
		rr := s.do("GET", "/api/v1/time-slots", nil, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Invalid Date", func(t *testing.T) {
		s := newTestServer(t, nil)
		rr := s.do("GET", "/api/v1/time-slots?date=15-01-2025", nil, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unknown Duration", func(t *testing.T) {
		s := newTestServer(t, nil)
		rr := s.do("GET", "/api/v1/time-slots?date=2025-01-15&duration=3h", nil, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("One Duration", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.booking.On("FreeWindows", mock.Anything, date, models.DurationMedium).Return([]responses.TimeSlot{{Start: "14:30", End: "16:00"}}, nil)

		rr := s.do("GET", "/api/v1/time-slots?date=2025-01-15&duration=1h30", nil, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"start":"14:30"`)
		s.booking.AssertExpectations(t)
	})

	t.Run("Any Duration", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.booking.On("FreeWindowsAnyDuration", mock.Anything, date).Return([]responses.TimeSlotWithDuration{}, nil)

		rr := s.do("GET", "/api/v1/time-slots?date=2025-01-15", nil, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		s.booking.AssertExpectations(t)
	})
}

func TestPricingRouter_GetPricing(t *testing.T) {
	s := newTestServer(t, nil)
	s.pricing.On("GetPricing", mock.Anything, "primaire", "home").Return(&responses.Pricing{Grade: "primaire", Location: "home"}, nil)
	s.pricing.On("GetPricing", mock.Anything, "cegep", "home").Return(nil, exceptions.ErrInvalidPricingQuery(nil))

	rr := s.do("GET", "/api/v1/pricing?grade=primaire&location=home", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = s.do("GET", "/api/v1/pricing?grade=cegep&location=home", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHealthRouter(t *testing.T) {
	t.Run("All Up", func(t *testing.T) {
		s := newTestServer(t, map[string]controllers.HealthCheck{
			"postgres": func(context.Context) error { return nil },
		})
		rr := s.do("GET", "/api/v1/healthz", nil, "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Dependency Down", func(t *testing.T) {
		s := newTestServer(t, map[string]controllers.HealthCheck{
			"postgres": func(context.Context) error { return nil },
			"redis":    func(context.Context) error { return errors.New("dial tcp: refused") },
		})
		rr := s.do("GET", "/api/v1/healthz", nil, "")
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Contains(t, rr.Body.String(), `"redis":"down"`)
	})
}
