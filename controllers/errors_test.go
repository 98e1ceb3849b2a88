package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"shopmart/services"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrInvalidArgument, http.StatusBadRequest},
		{services.ErrPasswordMismatch, http.StatusBadRequest},
		{services.ErrInvalidOTP, http.StatusBadRequest},
		{services.ErrOTPNotVerified, http.StatusBadRequest},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{services.ErrForbidden, http.StatusForbidden},
		{services.ErrProductNotFound, http.StatusNotFound},
		{services.ErrCartNotFound, http.StatusNotFound},
		{services.ErrItemNotInCart, http.StatusNotFound},
		{services.ErrUserNotFound, http.StatusNotFound},
		{services.ErrReviewNotFound, http.StatusNotFound},
		{services.ErrAddressNotFound, http.StatusNotFound},
		{services.ErrEmailTaken, http.StatusConflict},
		{services.ErrProductExists, http.StatusConflict},
		{services.ErrOTPUnavailable, http.StatusServiceUnavailable},
		{errors.New("pg timeout"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got, _ := statusForError(tt.err); got != tt.want {
			t.Errorf("statusForError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestStatusForWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("%w: quantity must be a positive integer", services.ErrInvalidArgument)
	if got, _ := statusForError(wrapped); got != http.StatusBadRequest {
		t.Fatalf("statusForError(wrapped) = %d, want %d", got, http.StatusBadRequest)
	}
}

func TestInternalErrorMessageIsGeneric(t *testing.T) {
	_, msg := statusForError(errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	if msg != "Internal server error" {
		t.Fatalf("message = %q, internal detail must not leak", msg)
	}
}
