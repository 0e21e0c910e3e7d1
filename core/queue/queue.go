package queue

import (
	"context"
	"encoding/json"
	"time"

	"vetcare-api/core/config"
	"vetcare-api/core/logger"

	"github.com/hibiken/asynq"
)

// TypeAppointmentReminder is the task type for reminder notifications
// scheduled when an appointment reaches Confirmed.
const TypeAppointmentReminder = "appointment:reminder"

// ReminderPayload is the reminder task body. Date and Time carry the
// appointment's display formats unchanged.
type ReminderPayload struct {
	AppointmentID string `json:"appointment_id"`
	UserID        string `json:"user_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Procedure     string `json:"procedure"`
}

// Client enqueues background tasks.
type Client struct {
	client *asynq.Client
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// EnqueueAppointmentReminder schedules a reminder task to run after delay.
func (c *Client) EnqueueAppointmentReminder(ctx context.Context, p ReminderPayload, delay time.Duration) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeAppointmentReminder, body)
	info, err := c.client.EnqueueContext(ctx, task, asynq.ProcessIn(delay), asynq.MaxRetry(3))
	if err != nil {
		return err
	}

	logger.Info("Queue:EnqueueAppointmentReminder:Enqueued",
		"task_id", info.ID,
		"appointment_id", p.AppointmentID,
		"process_in", delay.String(),
	)
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// NewServer builds the worker that processes background tasks. Handlers are
// registered on the returned mux by the modules that own them.
func NewServer(redisCfg config.RedisConfig, queueCfg config.QueueConfig) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		},
		asynq.Config{
			Concurrency: queueCfg.Concurrency,
		},
	)
	return srv, asynq.NewServeMux()
}
