package testutil

import (
	"context"
	"encoding/json"
	"invoice-dashboard/internal/config"
	"invoice-dashboard/internal/middlewares"
	"invoice-dashboard/internal/mocks"
	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/web"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

// TestContext holds everything needed for testing
type TestContext struct {
	AppContext     *middlewares.AppContext
	Request        *http.Request
	Response       *httptest.ResponseRecorder
	MockController *gomock.Controller
	MockSession    *mocks.MockSessionProvider
	MockBackend    *mocks.MockBackendClient
	MockStats      *mocks.MockStatsProvider
	LogHandler     *TestLogHandler
}

// NewTestContextWithURL creates a complete test setup with default config,
// gomock collaborators and the real page renderer.
func NewTestContextWithURL(t *testing.T, method, target string) *TestContext {
	return NewTestContextWithRequest(t, httptest.NewRequest(method, target, nil))
}

// NewFormTestContext builds a urlencoded form submission.
func NewFormTestContext(t *testing.T, method, target string, form url.Values) *TestContext {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return NewTestContextWithRequest(t, req)
}

func NewTestContextWithRequest(t *testing.T, req *http.Request) *TestContext {
	t.Helper()

	cfg := config.Default()

	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)
	mockSession := mocks.NewMockSessionProvider(ctrl)
	mockBackend := mocks.NewMockBackendClient(ctrl)
	mockStats := mocks.NewMockStatsProvider(ctrl)

	renderer, err := web.NewRenderer(logger)
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}

	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:        req.Context(),
		Config:         cfg,
		Logger:         logger,
		SessionManager: mockSession,
		Backend:        mockBackend,
		Stats:          mockStats,
		Renderer:       renderer,
		Request:        req,
		Response:       rr,
	}

	return &TestContext{
		AppContext:     appCtx,
		Request:        req,
		Response:       rr,
		MockController: ctrl,
		MockSession:    mockSession,
		MockBackend:    mockBackend,
		MockStats:      mockStats,
		LogHandler:     logHandler,
	}
}

// Finish should be called at the end of tests to clean up mocks
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	t.Helper()
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

func (tc *TestContext) AssertLogCount(t *testing.T, level slog.Level, expectedCount int) {
	t.Helper()
	count := tc.LogHandler.CountByLevel(level)
	if count != expectedCount {
		t.Errorf("Expected %d log entries at level %v, got %d", expectedCount, level, count)
	}
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	t.Helper()
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// AssertRedirect checks the status code and Location header
func (tc *TestContext) AssertRedirect(t *testing.T, expectedStatus int, location string) {
	t.Helper()
	tc.AssertStatus(t, expectedStatus)
	if got := tc.Response.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	t.Helper()
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

func (tc *TestContext) AssertBodyContains(t *testing.T, substr string) {
	t.Helper()
	if !strings.Contains(tc.Response.Body.String(), substr) {
		t.Errorf("Expected body to contain %q", substr)
	}
}

func (tc *TestContext) AssertBodyNotContains(t *testing.T, substr string) {
	t.Helper()
	if strings.Contains(tc.Response.Body.String(), substr) {
		t.Errorf("Expected body not to contain %q", substr)
	}
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

func (tc *TestContext) AssertJSONBool(t *testing.T, field string, expected bool) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualBool, ok := actual.(bool)
	if !ok {
		t.Errorf("Expected %s to be a boolean, got %T", field, actual)
		return
	}

	if actualBool != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, actualBool)
	}
}

// AssertJSONString checks a specific string field in a JSON response
func (tc *TestContext) AssertJSONString(t *testing.T, field string, expected string) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualString, ok := actual.(string)
	if !ok {
		t.Errorf("Expected %s to be a string, got %T", field, actual)
		return
	}

	if actualString != expected {
		t.Errorf("Expected %s to be %q, got %q", field, expected, actualString)
	}
}

// WithConfig allows you to override the default config for specific tests
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	return tc
}

// WithRenderer swaps the page renderer, e.g. for a failing mock
func (tc *TestContext) WithRenderer(renderer middlewares.Renderer) *TestContext {
	tc.AppContext.Renderer = renderer
	return tc
}

// WithURLParam sets a chi route parameter on the request
func (tc *TestContext) WithURLParam(key, value string) *TestContext {
	rctx := chi.RouteContext(tc.Request.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return tc.WithRequest(tc.Request.WithContext(context.WithValue(tc.Request.Context(), chi.RouteCtxKey, rctx)))
}

// WithRequest allows you to set a custom request
func (tc *TestContext) WithRequest(req *http.Request) *TestContext {
	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()
	return tc
}

// ExpectState sets up an expectation for session.State()
func (tc *TestContext) ExpectState(state models.SessionState) *gomock.Call {
	return tc.MockSession.EXPECT().State(tc.AppContext).Return(state).AnyTimes()
}

// ExpectLoggedIn is the common case of an authenticated demo user with no
// pending flash.
func (tc *TestContext) ExpectLoggedIn(username string) {
	tc.ExpectState(models.SessionState{Authenticated: true, Username: username})
	tc.ExpectNoFlash()
}

func (tc *TestContext) ExpectNoFlash() *gomock.Call {
	return tc.MockSession.EXPECT().PopFlash(tc.AppContext).Return(models.Flash{}, false).AnyTimes()
}

// FailingRenderer always returns an error from Render
type FailingRenderer struct {
	Err error
}

func (f FailingRenderer) Render(w io.Writer, page string, data any) error {
	return f.Err
}
