package stats

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mentoriapro/inscricoes/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Stats(ctx context.Context) (*models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stats), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestStatsHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			setupMocks: func(ms *MockService) {
				ms.On("Stats", mock.Anything).Return(&models.Stats{
					TotalSubscriptions: 1,
					ThisMonth:          1,
					Revenue:            decimal.New(29700, -2),
					ConversionRate:     100,
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"total_subscriptions":1,"this_month":1,"revenue":"297","conversion_rate":100}}`,
		},
		{
			name: "success - empty store",
			setupMocks: func(ms *MockService) {
				ms.On("Stats", mock.Anything).Return(&models.Stats{
					Revenue: decimal.Zero,
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"total_subscriptions":0,"this_month":0,"revenue":"0","conversion_rate":0}}`,
		},
		{
			name: "service error",
			setupMocks: func(ms *MockService) {
				ms.On("Stats", mock.Anything).Return(nil, assert.AnError).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not aggregate stats"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			handler := New(newNoopLogger(), service)

			tt.setupMocks(service)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())

			service.AssertExpectations(t)
		})
	}
}
