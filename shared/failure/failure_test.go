package failure_test

import (
	"errors"
	"fmt"
	"hotie/shared/failure"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{Code: http.StatusBadRequest, Message: "Guest name is required"}

	if f.Error() != "Guest name is required" {
		t.Errorf("expected message to be returned as error string, got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "bad request",
			err:         failure.BadRequest(errors.New("failed to decode request body")),
			wantCode:    http.StatusBadRequest,
			wantMessage: "failed to decode request body",
		},
		{
			name:        "bad request from string",
			err:         failure.BadRequestFromString("Room is not available"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Room is not available",
		},
		{
			name:        "unauthorized",
			err:         failure.Unauthorized("Invalid API key"),
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Invalid API key",
		},
		{
			name:        "internal",
			err:         failure.InternalError(errors.New("database connection failed")),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "database connection failed",
		},
		{
			name:        "not found",
			err:         failure.NotFound("Booking not found"),
			wantCode:    http.StatusNotFound,
			wantMessage: "Booking not found",
		},
		{
			name:        "conflict is reported as bad request",
			err:         failure.Conflict("Room is not available"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Room is not available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			if !errors.As(tt.err, &f) {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, f.Code)
			}

			if f.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, f.Message)
			}
		})
	}
}

func TestNilInputs(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for BadRequest(nil)")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected nil for InternalError(nil)")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    failure.NotFound("Guest not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("failed to insert data (booking): %w", failure.RoomNotAvailable),
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.input); got != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestIsInternal(t *testing.T) {
	if !failure.IsInternal(errors.New("boom")) {
		t.Error("expected plain errors to be internal")
	}

	if failure.IsInternal(failure.NotFound("Room not found")) {
		t.Error("expected not found to be a client error")
	}
}
