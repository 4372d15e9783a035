package public

import (
	handlershared "github.com/freshmart-next/internal/http/handlers/shared"
	"github.com/freshmart-next/internal/http/response"
	"github.com/freshmart-next/internal/queue"

	"github.com/gin-gonic/gin"
)

// TokenCreateRequest is the credential exchange payload.
type TokenCreateRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenRefreshRequest carries a refresh token.
type TokenRefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// CreateToken handles POST /auth/token/create. On success it returns an
// access/refresh pair and enqueues a login audit task; the response does not
// wait for the audit write.
func (h *Handler) CreateToken(c *gin.Context) {
	var req TokenCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, map[string][]string{
			"username": {"this field is required"},
		})
		return
	}
	user, err := h.AuthService.Authenticate(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	pair, err := h.AuthService.IssueTokenPair(user)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if h.QueueClient != nil {
		if err := h.QueueClient.EnqueueUserLoginLog(queue.UserLoginLogPayload{
			UserID:    user.ID,
			ClientIP:  c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}); err != nil {
			handlershared.RequestLog(c).Warnw("enqueue login log failed", "error", err)
		}
	}
	response.Success(c, pair)
}

// RefreshToken handles POST /auth/token/refresh.
func (h *Handler) RefreshToken(c *gin.Context) {
	var req TokenRefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, map[string][]string{
			"refresh": {"this field is required"},
		})
		return
	}
	access, err := h.AuthService.Refresh(req.Refresh)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"access": access})
}
