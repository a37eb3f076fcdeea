package create

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mentoriapro/inscricoes/internal/models"
	"github.com/mentoriapro/inscricoes/internal/payment"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.DummySubscription) (*models.Subscription, *payment.Handle, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Subscription), args.Get(1).(*payment.Handle), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCreateHandler_ServeHTTP(t *testing.T) {
	sub := &models.Subscription{
		ID:     "abc-123",
		Status: models.StatusPending,
		Amount: decimal.New(29700, -2),
	}

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success - stripe handle",
			body: `{"nome":"Ana Silva","email":"ana@x.com","telefone":"11999999999","plano":"pix"}`,
			setupMocks: func(ms *MockService) {
				ms.On("Create", mock.Anything, mock.Anything).
					Return(sub, &payment.Handle{ClientSecret: "pi_123_secret"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"subscription_id":"abc-123","status":"pending","amount":"297","client_secret":"pi_123_secret"}}`,
		},
		{
			name: "success - manual handle",
			body: `{"nome":"Ana Silva","email":"ana@x.com","telefone":"11999999999","plano":"pix"}`,
			setupMocks: func(ms *MockService) {
				ms.On("Create", mock.Anything, mock.Anything).
					Return(sub, &payment.Handle{
						CheckoutURL: "https://pay.cakto.com.br/rbkmhmg_551147",
						SupportURL:  "https://wa.me/5562993555185",
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"subscription_id":"abc-123","status":"pending","amount":"297","checkout_url":"https://pay.cakto.com.br/rbkmhmg_551147","support_url":"https://wa.me/5562993555185"}}`,
		},
		{
			name:           "invalid json",
			body:           `{nao é json`,
			setupMocks:     func(*MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "invalid email",
			body:           `{"nome":"Ana Silva","email":"not-an-email","telefone":"11999999999","plano":"pix"}`,
			setupMocks:     func(*MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Email must be a valid email address"}`,
		},
		{
			name:           "invalid plano",
			body:           `{"nome":"Ana Silva","email":"ana@x.com","telefone":"11999999999","plano":"boleto"}`,
			setupMocks:     func(*MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Plano must be one of: pix cartao"}`,
		},
		{
			name: "service error",
			body: `{"nome":"Ana Silva","email":"ana@x.com","telefone":"11999999999","plano":"pix"}`,
			setupMocks: func(ms *MockService) {
				ms.On("Create", mock.Anything, mock.Anything).
					Return(nil, nil, assert.AnError).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not create subscription"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			handler := New(newNoopLogger(), service)

			tt.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/subscriptions", strings.NewReader(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())

			service.AssertExpectations(t)
		})
	}
}
