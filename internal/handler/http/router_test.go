package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workaxis/hrms-backend-go/internal/config"
	"github.com/workaxis/hrms-backend-go/internal/handler/http/middleware"
	"github.com/workaxis/hrms-backend-go/internal/pkg/clock"
	"github.com/workaxis/hrms-backend-go/internal/pkg/email"
	"github.com/workaxis/hrms-backend-go/internal/pkg/events"
	"github.com/workaxis/hrms-backend-go/internal/pkg/jwt"
	"github.com/workaxis/hrms-backend-go/internal/pkg/pdf"
	"github.com/workaxis/hrms-backend-go/internal/pkg/storage"
	"github.com/workaxis/hrms-backend-go/internal/repository/memory"
	employeeservice "github.com/workaxis/hrms-backend-go/internal/service/employee"
	leaveservice "github.com/workaxis/hrms-backend-go/internal/service/leave"
	masterservice "github.com/workaxis/hrms-backend-go/internal/service/master"
	offerservice "github.com/workaxis/hrms-backend-go/internal/service/offer"
	payrollservice "github.com/workaxis/hrms-backend-go/internal/service/payroll"
	salaryservice "github.com/workaxis/hrms-backend-go/internal/service/salary"
	templateservice "github.com/workaxis/hrms-backend-go/internal/service/template"
)

type nopMailer struct{}

func (nopMailer) SendOfferLetter(context.Context, email.OfferLetterMessage) error { return nil }

type mapIdempotencyStore struct {
	mu     sync.Mutex
	saved  map[string]middleware.CachedResponse
	locked map[string]bool
}

func (s *mapIdempotencyStore) Get(_ context.Context, key string) (middleware.CachedResponse, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp, ok := s.saved[key]
	return resp, ok, nil
}

func (s *mapIdempotencyStore) Lock(_ context.Context, key string, _ time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locked[key] {
		return false, nil
	}
	s.locked[key] = true
	return true, nil
}

func (s *mapIdempotencyStore) Unlock(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locked, key)
	return nil
}

func (s *mapIdempotencyStore) Save(_ context.Context, key string, resp middleware.CachedResponse, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved[key] = resp
	return nil
}

type testAPI struct {
	router http.Handler
	token  string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store := memory.NewStore()
	clk := clock.Fixed(time.Date(2024, 10, 3, 9, 0, 0, 0, time.UTC))
	recorder := &events.Recorder{}
	renderer := pdf.NewRenderer("Acme Corp")

	files, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080/files")
	require.NoError(t, err)

	salarySvc := salaryservice.NewSalaryService(store, store.Salaries(), store.Employees())
	handlers := Handlers{
		Master:   NewMasterHandler(masterservice.NewMasterService(store.Departments(), store.Designations(), store.Employees())),
		Employee: NewEmployeeHandler(employeeservice.NewEmployeeService(store, store.Employees(), store.Departments(), store.Designations(), clk), salarySvc),
		Salary:   NewSalaryHandler(salarySvc),
		Payroll:  NewPayrollHandler(payrollservice.NewPayrollService(store, store.Payrolls(), store.Employees(), store.Salaries(), renderer, recorder, clk)),
		Leave:    NewLeaveHandler(leaveservice.NewLeaveService(store, store.LeaveTypes(), store.LeaveBalances(), store.LeaveRequests(), store.Employees(), clk)),
		Template: NewTemplateHandler(templateservice.NewTemplateService(store, store.Templates(), clk)),
		File:     NewFileHandler(files),
		Offer: NewOfferLetterHandler(offerservice.NewOfferLetterService(
			store, store.OfferLetters(), store.Employees(), store.Departments(), store.Designations(),
			store.Templates(), store.Salaries(), renderer, files, nopMailer{}, recorder, clk, "Acme Corp",
		)),
	}

	jwtService := jwt.NewJWTService("router-test-secret", time.Hour, clock.Real())
	token, _, err := jwtService.GenerateAccessToken(jwt.Claims{UserID: "hr-admin", Role: "hr"})
	require.NoError(t, err)

	cfg := &config.Config{
		App:  config.AppConfig{Env: "test", LogLevel: "error"},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	idempotency := &mapIdempotencyStore{saved: map[string]middleware.CachedResponse{}, locked: map[string]bool{}}

	return &testAPI{
		router: NewRouter(cfg, jwtService, handlers, idempotency),
		token:  token,
	}
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.token)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

type idResponse struct {
	ID string `json:"id"`
}

func TestRouter_RequiresAccessToken(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/departments", nil)
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/departments", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Heartbeat(t *testing.T) {
	api := newTestAPI(t)

	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ErrorMapping(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/v1/employees", map[string]string{}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "email")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/departments", strings.NewReader("{"))
	req.Header.Set("Authorization", "Bearer "+api.token)
	rec = httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/v1/offer-letters/8f14e45f-ceea-4e7a-9c1e-000000000000", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env = decodeEnvelope(t, rec, nil)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	rec = api.do(t, http.MethodGet, "/api/v1/payrolls?month=abc", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRouter_OfferAcceptanceToPayslip(t *testing.T) {
	api := newTestAPI(t)

	var dept, desig, draft, offerLetter idResponse
	rec := api.do(t, http.MethodPost, "/api/v1/departments", map[string]interface{}{"name": "Engineering"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	decodeEnvelope(t, rec, &dept)

	rec = api.do(t, http.MethodPost, "/api/v1/designations", map[string]interface{}{"title": "Engineer", "level": 2}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	decodeEnvelope(t, rec, &desig)

	rec = api.do(t, http.MethodPost, "/api/v1/employees", map[string]interface{}{
		"first_name":     "Asha",
		"email":          "asha.draft@example.com",
		"department_id":  dept.ID,
		"designation_id": desig.ID,
		"joining_date":   "2024-08-01",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	decodeEnvelope(t, rec, &draft)

	rec = api.do(t, http.MethodPost, "/api/v1/offer-letters", map[string]interface{}{
		"employee_id":     draft.ID,
		"candidate_name":  "Asha Rao",
		"candidate_email": "asha@example.com",
		"department_id":   dept.ID,
		"designation_id":  desig.ID,
		"joining_date":    "2024-08-01",
		"basic_salary":    "600000",
		"hra":             "240000",
		"pf":              "72000",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	decodeEnvelope(t, rec, &offerLetter)

	rec = api.do(t, http.MethodGet, "/api/v1/offer-letters/"+offerLetter.ID+"/pdf", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))

	var stored struct {
		FilePath string `json:"file_path"`
	}
	rec = api.do(t, http.MethodGet, "/api/v1/offer-letters/"+offerLetter.ID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeEnvelope(t, rec, &stored)
	assert.Equal(t, "offer-letters/"+offerLetter.ID+"/offer_letter_asha_rao.pdf", stored.FilePath)

	rec = api.do(t, http.MethodGet, "/files/"+stored.FilePath, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	rec = api.do(t, http.MethodGet, "/files/offer-letters/missing.pdf", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodPatch, "/api/v1/offer-letters/"+offerLetter.ID+"/status", map[string]string{"status": "sent"}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	key := map[string]string{middleware.IdempotencyHeader: "accept-1"}
	rec = api.do(t, http.MethodPost, "/api/v1/offer-letters/"+offerLetter.ID+"/accept", nil, key)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var accepted struct {
		EmployeeID   string `json:"employee_id"`
		EmployeeCode string `json:"employee_code"`
	}
	env := decodeEnvelope(t, rec, &accepted)
	assert.Equal(t, "Offer accepted and employee activated successfully", env.Message)
	assert.Equal(t, draft.ID, accepted.EmployeeID)
	assert.Equal(t, "EMP0001", accepted.EmployeeCode)

	replay := api.do(t, http.MethodPost, "/api/v1/offer-letters/"+offerLetter.ID+"/accept", nil, key)
	assert.Equal(t, http.StatusOK, replay.Code)
	assert.Equal(t, "true", replay.Header().Get(middleware.ReplayedHeader))
	assert.Equal(t, rec.Body.String(), replay.Body.String())

	rec = api.do(t, http.MethodPost, "/api/v1/offer-letters/"+offerLetter.ID+"/accept", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var emp struct {
		Status    string `json:"status"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	rec = api.do(t, http.MethodGet, "/api/v1/employees/"+draft.ID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeEnvelope(t, rec, &emp)
	assert.Equal(t, "active", emp.Status)
	assert.Equal(t, "Asha", emp.FirstName)
	assert.Equal(t, "Rao", emp.LastName)

	var generated struct {
		Generated int          `json:"generated"`
		Payrolls  []idResponse `json:"payrolls"`
	}
	rec = api.do(t, http.MethodPost, "/api/v1/payrolls/generate", map[string]int{"month": 9, "year": 2024}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	decodeEnvelope(t, rec, &generated)
	require.Equal(t, 1, generated.Generated)

	rec = api.do(t, http.MethodGet, "/api/v1/payrolls/"+generated.Payrolls[0].ID+"/payslip", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "payslip_EMP0001_2024_09.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}
