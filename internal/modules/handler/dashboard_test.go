package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/workdesk/workdesk/internal/modules/service"
)

// MockDashboardService is a mock implementation of service.DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Snapshot(ctx context.Context) (*service.DashboardSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DashboardSnapshot), args.Error(1)
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	generated := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		setup          func(*MockDashboardService)
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name: "snapshot",
			setup: func(svc *MockDashboardService) {
				svc.On("Snapshot", mock.Anything).Return(&service.DashboardSnapshot{
					Counts:         service.DashboardCounts{Clients: 2, OpenInvoices: 1, OpenInvoicesValue: 250},
					MonthlyRevenue: []float64{0, 0, 0, 0, 0, 100},
					RevenueMonths:  []string{"2026-05", "2026-06", "2026-07", "2026-08", "2026-09", "2026-10"},
					GeneratedAt:    generated,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var res struct {
					Data service.DashboardSnapshot `json:"data"`
				}
				require.NoError(t, sonic.Unmarshal(body, &res))
				assert.Equal(t, 2, res.Data.Counts.Clients)
				assert.Equal(t, 250.0, res.Data.Counts.OpenInvoicesValue)
				assert.Len(t, res.Data.MonthlyRevenue, service.RevenueMonths)
				assert.True(t, generated.Equal(res.Data.GeneratedAt))
			},
		},
		{
			name: "store failure",
			setup: func(svc *MockDashboardService) {
				svc.On("Snapshot", mock.Anything).Return(nil, errors.New("list tasks: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			svc := &MockDashboardService{}
			tt.setup(svc)

			r := gin.New()
			r.GET("/dashboard", NewDashboardHandler(svc).GetDashboard)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.check != nil {
				tt.check(t, w.Body.Bytes())
			}
			svc.AssertExpectations(t)
		})
	}
}
