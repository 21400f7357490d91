package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"
)

func owner(c *gin.Context) string {
	return c.GetString(middleware.OwnerKey)
}

// respondError maps engine errors to HTTP statuses. Validation and payment
// errors carry enough detail for the buyer to correct and retry.
func respondError(c *gin.Context, err error) {
	var verrs services.ValidationErrors
	var verr *services.ValidationError
	var perr *services.PaymentError
	var terr *services.TransitionError

	switch {
	case errors.As(err, &verrs):
		fields := make([]models.FieldError, 0, len(verrs))
		for _, e := range verrs {
			fields = append(fields, models.FieldError{Field: e.Field, Message: e.Message})
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Validation failed", Fields: fields})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: verr.Message,
			Fields:  []models.FieldError{{Field: verr.Field, Message: verr.Message}},
		})
	case errors.As(err, &perr):
		c.JSON(http.StatusPaymentRequired, models.ErrorResponse{Success: false, Message: perr.Error()})
	case errors.Is(err, services.ErrSubmissionInFlight), errors.Is(err, services.ErrCartLocked), errors.As(err, &terr):
		c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Internal error", Error: err.Error()})
	}
}
