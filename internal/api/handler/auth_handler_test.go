package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inuaai/onboarding-portal/internal/api/middleware"
	"github.com/inuaai/onboarding-portal/internal/core/domain"
	"github.com/inuaai/onboarding-portal/internal/core/ports"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error)
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error)
	logoutFn   func(ctx context.Context, sessionID string) error
	sessionFn  func(ctx context.Context, sessionID string) (*domain.Session, error)
}

func (s *stubAuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	return s.loginFn(ctx, input)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func (s *stubAuthService) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.sessionFn(ctx, sessionID)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_EmployeeSuccess(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
			if input.FirstName != "Alex" || input.LastName != "Kim" || input.IDNumber != "654321" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.AuthResult{
				Token: "token123",
				User:  &domain.User{ID: "user_1", Role: domain.RoleEmployee, FirstName: "Alex", LastName: "Kim"},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"firstName":"Alex","lastName":"Kim","idNumber":"654321"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["role"] != domain.RoleEmployee {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Login_ForwardsClientMeta(t *testing.T) {
	var got ports.ClientMeta
	stub := &stubAuthService{
		loginFn: func(_ context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
			got = input.Client
			return &ports.AuthResult{Token: "t", User: &domain.User{}}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"pw"}`)
	c.Request().Header.Set("User-Agent", "go-test")
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.UserAgent != "go-test" {
		t.Fatalf("user agent not forwarded: %+v", got)
	}
	if got.IPAddress == "" {
		t.Fatalf("expected peer address to be captured")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _ ports.LoginInput) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"bad"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _ ports.LoginInput) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", "{")
	err := handler.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
			if input.FirstName != "Alex" || input.IDNumber != "654321" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.AuthResult{
				Token: "token123",
				User:  &domain.User{ID: "user_1", Role: domain.RoleEmployee},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"firstName":"Alex","lastName":"Kim","idNumber":"654321","userRole":"EMPLOYEE","currentAgreedPolicies":["m1p1"],"currentCompletedTools":["t1"]}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/register", body)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_BadIDNumber(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"firstName":"Alex","lastName":"Kim","idNumber":"12ab","userRole":"EMPLOYEE","currentAgreedPolicies":["m1p1"],"currentCompletedTools":["t1"]}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/register", body)
	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_DuplicateName(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.AuthResult, error) {
			return nil, domain.ErrDuplicateName
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"firstName":"Alex","lastName":"Kim","idNumber":"654321","userRole":"EMPLOYEE","currentAgreedPolicies":["m1p1"],"currentCompletedTools":["t1"]}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/register", body)
	if err := handler.Register(c); !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName to propagate, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var deleted string
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, sessionID string) error {
			deleted = sessionID
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	c.Set(middleware.CtxSessionID, "sess_1")
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "sess_1" {
		t.Fatalf("expected session sess_1 deleted, got %q", deleted)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	stub := &stubAuthService{
		sessionFn: func(_ context.Context, sessionID string) (*domain.Session, error) {
			if sessionID != "sess_1" {
				t.Fatalf("unexpected session id: %s", sessionID)
			}
			return &domain.Session{
				IsLoggedIn:     true,
				UserID:         "user_1",
				UserRole:       domain.RoleEmployee,
				AgreedPolicies: []string{},
				CompletedTools: []string{},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/auth/session", "")
	c.Set(middleware.CtxSessionID, "sess_1")
	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	session, ok := resp["session"].(map[string]any)
	if !ok || session["isLoggedIn"] != true || session["userId"] != "user_1" {
		t.Fatalf("unexpected session payload: %+v", session)
	}
}
