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

	"github.com/medicore/hospital-api/internal/core/domain"
	"github.com/medicore/hospital-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) error
	loginFn    func(ctx context.Context, email, password string, role domain.Role) (*ports.LoginResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string, role domain.Role) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password, role)
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

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) error {
			if input.Email != "doc@example.com" || input.Role != domain.RoleDoctor {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.Specialization != "cardiology" {
				t.Fatalf("specialization not forwarded: %+v", input)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/signup",
		`{"firstName":"Greg","lastName":"House","email":"doc@example.com","password":"s3cret1","role":"doctor","specialization":"cardiology"}`)

	if err := handler.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestAuthHandler_Signup_EmailTaken(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) error {
			return domain.ErrEmailTaken
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/signup",
		`{"firstName":"Greg","lastName":"House","email":"doc@example.com","password":"s3cret1","role":"doctor"}`)

	if err := handler.Signup(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Signup_ValidationFailures(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	cases := map[string]string{
		"bad role":       `{"firstName":"A","lastName":"B","email":"a@example.com","password":"s3cret1","role":"janitor"}`,
		"short password": `{"firstName":"A","lastName":"B","email":"a@example.com","password":"abc","role":"patient"}`,
		"bad email":      `{"firstName":"A","lastName":"B","email":"not-an-email","password":"s3cret1","role":"patient"}`,
		"missing name":   `{"email":"a@example.com","password":"s3cret1","role":"patient"}`,
		"not json":       `not-json`,
	}
	for name, body := range cases {
		c, _ := newTestContext(t, http.MethodPost, "/api/signup", body)
		err := handler.Signup(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", name, err)
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string, role domain.Role) (*ports.LoginResult, error) {
			if email != "ada@example.com" || password != "s3cret1" || role != domain.RolePatient {
				t.Fatalf("unexpected args: %s %s %s", email, password, role)
			}
			return &ports.LoginResult{Token: "token123", Role: domain.RolePatient}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/login",
		`{"email":"ada@example.com","password":"s3cret1","role":"patient"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "token123" || resp.Role != "patient" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string, _ domain.Role) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/login",
		`{"email":"ada@example.com","password":"wrong","role":"patient"}`)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingRole(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string, _ domain.Role) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/login",
		`{"email":"ada@example.com","password":"s3cret1"}`)

	err := handler.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
