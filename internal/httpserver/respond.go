package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"alanshor-pos/internal/domain"
)

// respondError maps service errors onto HTTP statuses. Sentinels get their
// own status; everything else is treated as a caller mistake since the
// in-memory stores have no internal failure modes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "code": "empty_cart"})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "code": "invalid_transition"})
	case errors.Is(err, domain.ErrInsufficientPayment):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "code": "insufficient_payment"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
