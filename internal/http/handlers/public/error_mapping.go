package public

import (
	"errors"

	handlershared "github.com/freshmart-next/internal/http/handlers/shared"
	"github.com/freshmart-next/internal/http/response"
	"github.com/freshmart-next/internal/service"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto HTTP responses. Validation
// errors become field-scoped 400 bodies; everything unclassified is a 500.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.FieldErrors(c, map[string][]string{
			validationErr.Field: {validationErr.Message},
		})
	case errors.Is(err, service.ErrUnauthorized):
		response.Unauthorized(c, "authentication credentials were not provided")
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, "no active account found with the given credentials")
	case errors.Is(err, service.ErrUserDisabled):
		response.Unauthorized(c, "account disabled")
	case errors.Is(err, service.ErrTokenInvalid):
		response.Unauthorized(c, "token is invalid or expired")
	default:
		respondError(c, response.CodeInternal, "internal error", err)
	}
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}
