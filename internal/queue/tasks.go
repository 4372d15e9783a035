package queue

import (
	"encoding/json"

	"github.com/freshmart-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskUserLoginLog records a successful login.
	TaskUserLoginLog = constants.TaskUserLoginLog
)

// UserLoginLogPayload is the login audit task payload.
type UserLoginLogPayload struct {
	UserID    uint   `json:"user_id"`
	ClientIP  string `json:"client_ip"`
	UserAgent string `json:"user_agent"`
}

// NewUserLoginLogTask creates the login audit task.
func NewUserLoginLogTask(payload UserLoginLogPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskUserLoginLog, body), nil
}
