package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopmart/models"
	"shopmart/services"
)

// statusForError translates service-layer sentinel errors into HTTP statuses.
// Unknown errors surface as a generic 500 so internal detail never leaks.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidArgument),
		errors.Is(err, services.ErrPasswordMismatch),
		errors.Is(err, services.ErrInvalidOTP),
		errors.Is(err, services.ErrOTPNotVerified):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()

	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, err.Error()

	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrItemNotInCart),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrReviewNotFound),
		errors.Is(err, services.ErrAddressNotFound):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrProductExists):
		return http.StatusConflict, err.Error()

	case errors.Is(err, services.ErrOTPUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}

func respondError(c *gin.Context, err error) {
	status, message := statusForError(err)
	c.JSON(status, models.ErrorResponse{Success: false, Message: message})
}
