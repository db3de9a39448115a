package sales

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/murkotick/sales-record-service/internal/app/sales/domain"
)

// writeError translates core failures into HTTP responses. Validation
// errors carry their field details; a selector misconfiguration is a
// defect, not user input, and stays a 500.
func writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		details := make([]gin.H, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			details = append(details, gin.H{"field": fe.Field, "message": fe.Message})
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": details})
		return
	}

	if errors.Is(err, domain.ErrSaleNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
