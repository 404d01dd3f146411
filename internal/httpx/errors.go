package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/snackshop/internal/backend"
)

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	Error string `json:"error" example:"message"`
}

func Fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, HTTPError{Error: msg})
}

// FailBackend maps a catalog API failure: 503 while the breaker is open,
// the backend's own 4xx, and 502 for anything else.
func FailBackend(c *gin.Context, err error) {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, backend.ErrUnavailable):
		Fail(c, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500:
		Fail(c, apiErr.Status, apiErr.Error())
	case errors.As(err, &apiErr):
		Fail(c, http.StatusBadGateway, apiErr.Error())
	default:
		Fail(c, http.StatusBadGateway, err.Error())
	}
}
