package api

import (
	"errors"
	"net/http"

	"tododesk/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps core errors onto the JSON surface. Storage failures never
// crash the UI: they come back as a retryable 503 and the in-memory list is
// guaranteed untouched by the layers below.
func respondError(c *gin.Context, err error) {
	var storageErr *domain.StorageError
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &storageErr):
		logrus.WithField("op", storageErr.Op).Errorf("storage failure: %v", storageErr.Err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, please retry"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
