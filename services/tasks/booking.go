package tasks

import (
	"encoding/json"
	"time"

	"fixv/models"

	"github.com/hibiken/asynq"
)

const (
	// TypeBookingConfirmed delivers the confirmation push after a booking
	// commits.
	TypeBookingConfirmed = "booking:confirmed"
	// TypeReconcileSweep voids pending transactions orphaned by a failed
	// cancellation.
	TypeReconcileSweep = "booking:reconcile"
)

// NewBookingConfirmedTask builds the queue task carrying a booking
// confirmation push.
func NewBookingConfirmedTask(payload models.BookingConfirmedPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmed, b)
	opts := []asynq.Option{asynq.MaxRetry(3), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}

// NewReconcileSweepTask builds the periodic reconciliation task. It carries
// no payload; the worker computes the cutoff when it runs.
func NewReconcileSweepTask() *asynq.Task {
	return asynq.NewTask(TypeReconcileSweep, nil)
}
