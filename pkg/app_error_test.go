package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewDomainError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 0)

	if e.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected default 500, got %d", e.HTTPStatus)
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected error string: %s", e.Error())
	}
}

func TestAppError_ToHTTPError(t *testing.T) {
	e := NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	body := e.ToHTTPError()
	if body.Success || body.Code != "BOOKING_NOT_FOUND" || body.Error != "Booking not found" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if e.Error() != "BOOKING_NOT_FOUND: Booking not found" {
		t.Fatalf("unexpected error string: %s", e.Error())
	}
}
