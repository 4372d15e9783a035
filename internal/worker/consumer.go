package worker

import (
	"context"
	"encoding/json"

	"github.com/freshmart-next/internal/logger"
	"github.com/freshmart-next/internal/provider"
	"github.com/freshmart-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles queued tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register binds task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskUserLoginLog, c.handleUserLoginLog)
}

func (c *Consumer) handleUserLoginLog(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.UserLoginLogPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_user_login_log_unmarshal_failed", "error", err)
		return err
	}
	if payload.UserID == 0 {
		logger.Debugw("worker_user_login_log_skip_invalid_payload", "user_id", payload.UserID)
		return nil
	}
	if err := c.UserLoginLogService.Record(payload.UserID, payload.ClientIP, payload.UserAgent); err != nil {
		logger.Warnw("worker_user_login_log_record_failed", "user_id", payload.UserID, "error", err)
		return err
	}
	return nil
}
