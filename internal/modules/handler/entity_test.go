package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/workdesk/workdesk/internal/modules/model"
	"github.com/workdesk/workdesk/internal/modules/repo"
	"github.com/workdesk/workdesk/internal/modules/service"
)

type testEnv struct {
	router   *gin.Engine
	services EntityServices
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	deps := service.Deps{}
	s := EntityServices{
		Users:           service.NewUserService(repo.NewMemoryStore[model.User](nil), deps),
		Clients:         service.NewEntityService[model.Client](service.KindClients, repo.NewMemoryStore[model.Client](nil), deps, service.Hooks[model.Client]{}),
		Projects:        service.NewEntityService[model.Project](service.KindProjects, repo.NewMemoryStore[model.Project](nil), deps, service.Hooks[model.Project]{}),
		Tasks:           service.NewEntityService[model.Task](service.KindTasks, repo.NewMemoryStore[model.Task](nil), deps, service.Hooks[model.Task]{}),
		Proposals:       service.NewEntityService[model.Proposal](service.KindProposals, repo.NewMemoryStore[model.Proposal](nil), deps, service.Hooks[model.Proposal]{}),
		Invoices:        service.NewEntityService[model.Invoice](service.KindInvoices, repo.NewMemoryStore[model.Invoice](nil), deps, service.Hooks[model.Invoice]{}),
		Expenses:        service.NewEntityService[model.Expense](service.KindExpenses, repo.NewMemoryStore[model.Expense](nil), deps, service.Hooks[model.Expense]{}),
		SupportTickets:  service.NewEntityService[model.SupportTicket](service.KindSupportTickets, repo.NewMemoryStore[model.SupportTicket](nil), deps, service.Hooks[model.SupportTicket]{}),
		SupportMessages: service.NewEntityService[model.SupportMessage](service.KindSupportMessages, repo.NewMemoryStore[model.SupportMessage](nil), deps, service.Hooks[model.SupportMessage]{}),
		CalendarEvents:  service.NewEntityService[model.CalendarEvent](service.KindCalendarEvents, repo.NewMemoryStore[model.CalendarEvent](nil), deps, service.Hooks[model.CalendarEvent]{}),
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	entities := r.Group("/api/v1/entities")
	for _, h := range NewEntityRoutes(s) {
		h.Register(entities.Group("/" + h.Kind()))
	}
	return &testEnv{router: r, services: s}
}

type envelope struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data"`
	Msg  string          `json:"msg"`
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		buf.Write(raw)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func TestEntityHandler_ClientCRUD(t *testing.T) {
	env := newTestEnv()

	w, res := env.do(t, http.MethodPost, "/api/v1/entities/clients", map[string]any{
		"companyName": "Acme",
		"id":          99,
		"createdAt":   "2000-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created model.Client
	require.NoError(t, sonic.Unmarshal(res.Data, &created))
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, model.ClientStatusActive, created.Status)
	assert.NotEqual(t, 2000, created.CreatedAt.Year())

	w, res = env.do(t, http.MethodGet, "/api/v1/entities/clients/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got model.Client
	require.NoError(t, sonic.Unmarshal(res.Data, &got))
	assert.Equal(t, "Acme", got.CompanyName)

	w, res = env.do(t, http.MethodPatch, "/api/v1/entities/clients/1", map[string]any{"companyName": "Acme Ltd"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, sonic.Unmarshal(res.Data, &got))
	assert.Equal(t, "Acme Ltd", got.CompanyName)

	w, _ = env.do(t, http.MethodDelete, "/api/v1/entities/clients/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())

	w, _ = env.do(t, http.MethodDelete, "/api/v1/entities/clients/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEntityHandler_Errors(t *testing.T) {
	env := newTestEnv()
	_, _ = env.do(t, http.MethodPost, "/api/v1/entities/clients", map[string]any{"companyName": "Acme"})

	tests := []struct {
		name           string
		method         string
		path           string
		body           any
		expectedStatus int
	}{
		{name: "missing required field", method: http.MethodPost, path: "/api/v1/entities/clients", body: map[string]any{}, expectedStatus: http.StatusBadRequest},
		{name: "malformed email", method: http.MethodPost, path: "/api/v1/entities/clients", body: map[string]any{"companyName": "x", "email": "nope"}, expectedStatus: http.StatusBadRequest},
		{name: "malformed body", method: http.MethodPost, path: "/api/v1/entities/clients", body: "not an object", expectedStatus: http.StatusBadRequest},
		{name: "get miss", method: http.MethodGet, path: "/api/v1/entities/clients/42", expectedStatus: http.StatusNotFound},
		{name: "malformed id", method: http.MethodGet, path: "/api/v1/entities/clients/abc", expectedStatus: http.StatusBadRequest},
		{name: "zero id", method: http.MethodGet, path: "/api/v1/entities/clients/0", expectedStatus: http.StatusBadRequest},
		{name: "patch miss", method: http.MethodPatch, path: "/api/v1/entities/clients/42", body: map[string]any{"companyName": "x"}, expectedStatus: http.StatusNotFound},
		{name: "patch clears required field", method: http.MethodPatch, path: "/api/v1/entities/clients/1", body: map[string]any{"companyName": ""}, expectedStatus: http.StatusBadRequest},
		{name: "bad filter", method: http.MethodGet, path: "/api/v1/entities/tasks?projectId=x", expectedStatus: http.StatusBadRequest},
		{name: "support messages reject patch", method: http.MethodPatch, path: "/api/v1/entities/support-messages/1", body: map[string]any{}, expectedStatus: http.StatusMethodNotAllowed},
		{name: "support messages reject delete", method: http.MethodDelete, path: "/api/v1/entities/support-messages/1", expectedStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := env.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestEntityHandler_ValidationErrorListsFields(t *testing.T) {
	env := newTestEnv()

	w, res := env.do(t, http.MethodPost, "/api/v1/entities/invoices", map[string]any{"value": 10})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var fields []model.FieldError
	require.NoError(t, sonic.Unmarshal(res.Data, &fields))
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	assert.ElementsMatch(t, []string{"clientId", "dueDate"}, names)
}

func TestEntityHandler_TaskLifecycle(t *testing.T) {
	env := newTestEnv()

	w, _ := env.do(t, http.MethodPost, "/api/v1/entities/tasks", map[string]any{"name": "T", "completedAt": "2020-01-01T00:00:00Z"})
	require.Equal(t, http.StatusCreated, w.Code)

	_, res := env.do(t, http.MethodGet, "/api/v1/entities/tasks/1", nil)
	var task model.Task
	require.NoError(t, sonic.Unmarshal(res.Data, &task))
	assert.Equal(t, model.TaskStatusBacklog, task.Status)
	assert.Nil(t, task.CompletedAt)

	w, res = env.do(t, http.MethodPatch, "/api/v1/entities/tasks/1", map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, sonic.Unmarshal(res.Data, &task))
	require.NotNil(t, task.CompletedAt)
	first := *task.CompletedAt

	w, res = env.do(t, http.MethodPatch, "/api/v1/entities/tasks/1", map[string]any{"status": "completed", "name": "T2"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, sonic.Unmarshal(res.Data, &task))
	assert.Equal(t, "T2", task.Name)
	assert.True(t, first.Equal(*task.CompletedAt))
}

func TestEntityHandler_ListFilters(t *testing.T) {
	env := newTestEnv()
	for i, pid := range []uint{1, 2, 1} {
		w, _ := env.do(t, http.MethodPost, "/api/v1/entities/tasks", map[string]any{"name": fmt.Sprintf("t%d", i), "projectId": pid})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	_, _ = env.do(t, http.MethodPost, "/api/v1/entities/tasks", map[string]any{"name": "orphan"})

	_, res := env.do(t, http.MethodGet, "/api/v1/entities/tasks?projectId=1", nil)
	var tasks []model.Task
	require.NoError(t, sonic.Unmarshal(res.Data, &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, []uint{1, 3}, []uint{tasks[0].ID, tasks[1].ID})

	_, res = env.do(t, http.MethodGet, "/api/v1/entities/tasks", nil)
	require.NoError(t, sonic.Unmarshal(res.Data, &tasks))
	assert.Len(t, tasks, 4)

	_, res = env.do(t, http.MethodGet, "/api/v1/entities/tasks?status=completed", nil)
	require.NoError(t, sonic.Unmarshal(res.Data, &tasks))
	assert.Empty(t, tasks)
}

func TestEntityHandler_Users(t *testing.T) {
	env := newTestEnv()
	user := map[string]any{"name": "Ann", "email": "ann@example.com", "username": "ann", "password": "s3cret-pass"}

	w, _ := env.do(t, http.MethodPost, "/api/v1/entities/users", user)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "s3cret-pass")

	w, _ = env.do(t, http.MethodGet, "/api/v1/entities/users", nil)
	assert.NotContains(t, w.Body.String(), "password")

	dup := map[string]any{"name": "Other", "email": "other@example.com", "username": "ann", "password": "another-pass"}
	w, _ = env.do(t, http.MethodPost, "/api/v1/entities/users", dup)
	assert.Equal(t, http.StatusConflict, w.Code)

	short := map[string]any{"name": "Bo", "email": "bo@example.com", "username": "bob", "password": "short"}
	w, _ = env.do(t, http.MethodPost, "/api/v1/entities/users", short)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEntityHandler_SupportMessagesAppendOnly(t *testing.T) {
	env := newTestEnv()

	w, _ := env.do(t, http.MethodPost, "/api/v1/entities/support-messages", map[string]any{"ticketId": 1, "senderId": 2, "message": "hello"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = env.do(t, http.MethodGet, "/api/v1/entities/support-messages?ticketId=1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hello")
}

// MockClientService is a mock implementation of service.EntityService[model.Client]
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) Kind() string { return service.KindClients }

func (m *MockClientService) Create(ctx context.Context, e *model.Client) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockClientService) GetByID(ctx context.Context, id uint) (*model.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientService) List(ctx context.Context, f repo.Filter) ([]model.Client, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientService) Update(ctx context.Context, id uint, p model.Patch[model.Client]) (*model.Client, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientService) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestEntityHandler_ServiceErrors(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setup          func(*MockClientService)
		expectedStatus int
	}{
		{
			name:   "list storage failure",
			method: http.MethodGet,
			path:   "/clients?status=active",
			setup: func(svc *MockClientService) {
				svc.On("List", mock.Anything, repo.Filter{"status": "active"}).Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:   "create duplicate",
			method: http.MethodPost,
			path:   "/clients",
			body:   `{"companyName":"Acme"}`,
			setup: func(svc *MockClientService) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Client) bool {
					return c.CompanyName == "Acme"
				})).Return(fmt.Errorf("email: %w", repo.ErrDuplicateKey))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "delete failure",
			method: http.MethodDelete,
			path:   "/clients/3",
			setup: func(svc *MockClientService) {
				svc.On("Delete", mock.Anything, uint(3)).Return(false, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:   "update passes typed patch",
			method: http.MethodPatch,
			path:   "/clients/3",
			body:   `{"status":"inactive"}`,
			setup: func(svc *MockClientService) {
				svc.On("Update", mock.Anything, uint(3), mock.MatchedBy(func(p model.Patch[model.Client]) bool {
					cp, ok := p.(model.ClientPatch)
					return ok && cp.Status != nil && *cp.Status == "inactive" && cp.CompanyName == nil
				})).Return(&model.Client{ID: 3, CompanyName: "Acme", Status: "inactive"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			svc := &MockClientService{}
			tt.setup(svc)

			h := NewEntityHandler[model.Client, model.ClientPatch](svc, map[string]FilterParam{"status": StringFilter("status")})
			r := gin.New()
			h.Register(r.Group("/" + h.Kind()))

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
