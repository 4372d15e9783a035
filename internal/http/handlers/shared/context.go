package shared

import (
	"github.com/freshmart-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetContextUint reads a uint value from the request context, responding
// with the proper error when it is missing or of the wrong shape.
func GetContextUint(c *gin.Context, key string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		response.Unauthorized(c, "authentication credentials were not provided")
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			response.BadRequest(c, "invalid identifier")
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			response.BadRequest(c, "invalid identifier")
			return 0, false
		}
		return uint(v), true
	default:
		response.Error(c, response.CodeInternal, "internal error")
		return 0, false
	}
}
