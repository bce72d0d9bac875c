package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medicore/hospital-api/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrEmailTaken, http.StatusBadRequest, "email already exists"},
		{domain.ErrInvalidCredentials, http.StatusBadRequest, "invalid credentials"},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many login attempts, try again later"},
		{domain.ErrAccountNotFound, http.StatusNotFound, "account not found"},
		{domain.ErrBillNotFound, http.StatusNotFound, "bill not found"},
		{domain.ErrClaimNotFound, http.StatusNotFound, "insurance claim not found"},
		{domain.ErrSlotTaken, http.StatusConflict, "slot already booked"},
		{domain.ErrInvalidDate, http.StatusBadRequest, domain.ErrInvalidDate.Error()},
	}
	for _, tc := range cases {
		rec, body := runErrorHandler(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["error"] != tc.msg {
			t.Fatalf("%v: expected %q, got %q", tc.err, tc.msg, body["error"])
		}
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec, body := runErrorHandler(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["error"] != "missing authorization header" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	rec, body := runErrorHandler(t, errors.New("database on fire"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body["error"])
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("create doctor profile"), domain.ErrEmailTaken)
	rec, _ := runErrorHandler(t, wrapped)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrapped domain error, got %d", rec.Code)
	}
}
