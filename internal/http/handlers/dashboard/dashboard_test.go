package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/bill-reminder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/bill-reminder/internal/models"
)

// MockService реализует интерфейс dashboard.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Dashboard(ctx context.Context, userID int64) (*models.DashboardSummary, error) {
	args := m.Called(ctx, userID)
	if s := args.Get(0); s != nil {
		return s.(*models.DashboardSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestDashboardHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		withUser       bool
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное получение сводки",
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Dashboard", mock.Anything, int64(1)).Return(&models.DashboardSummary{
					TotalBills:    4,
					PaidBills:     1,
					UnpaidBills:   2,
					OverdueBills:  1,
					TotalAmount:   200000,
					PaidAmount:    30000,
					UnpaidAmount:  70000,
					OverdueAmount: 100000,
					UpcomingBills: []*models.Bill{},
					RecentBills:   []*models.Bill{},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_bills":4`,
		},
		{
			name:           "отсутствует авторизация",
			withUser:       false,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:     "ошибка сервиса",
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Dashboard", mock.Anything, int64(1)).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not build dashboard summary"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			if tt.withUser {
				ctx = context.WithValue(ctx, middlewarectx.UserID, int64(1))
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
