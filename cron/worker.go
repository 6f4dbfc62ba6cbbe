package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fixv/config"
	bookingRepo "fixv/database/repository/booking"
	"fixv/models"
	"fixv/services/notification"
	"fixv/services/tasks"
	"fixv/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func queueRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// Dispatcher enqueues background tasks for the queue worker.
type Dispatcher struct {
	client *asynq.Client
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{client: asynq.NewClient(queueRedisOpts())}
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}

// DispatchBookingConfirmed queues the confirmation push for a committed
// booking.
func (d *Dispatcher) DispatchBookingConfirmed(payload models.BookingConfirmedPayload) error {
	task, opts, err := tasks.NewBookingConfirmedTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build booking confirmation task: %w", err)
	}
	if _, err := d.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue booking confirmation: %w", err)
	}
	return nil
}

// InitWorker runs the queue worker and its schedule in the background. The
// worker delivers confirmation pushes and runs the hourly sweep that voids
// pending transactions whose appointment is gone: a cancellation deletes the
// appointment first and voids the transaction second, and when the second
// write fails this sweep is what eventually voids it.
func InitWorker(repo bookingRepo.BookingRepository, notifSvc notification.NotificationService) {
	srv := asynq.NewServer(queueRedisOpts(), asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmed, handleBookingConfirmed(notifSvc))
	mux.HandleFunc(tasks.TypeReconcileSweep, handleReconcileSweep(repo))

	go func() {
		if err := srv.Run(mux); err != nil {
			utils.GetLogger().Error("queue worker stopped", zap.Error(err))
		}
	}()

	scheduler := asynq.NewScheduler(queueRedisOpts(), nil)
	if _, err := scheduler.Register("@hourly", tasks.NewReconcileSweepTask()); err != nil {
		utils.GetLogger().Error("failed to schedule reconciliation sweep", zap.Error(err))
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			utils.GetLogger().Error("queue scheduler stopped", zap.Error(err))
		}
	}()

	utils.GetLogger().Info("queue worker started",
		zap.Int("orphanVoidAfterHours", orphanVoidAfterHours()))
}

func handleBookingConfirmed(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingConfirmedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return fmt.Errorf("invalid booking confirmation payload: %w", err)
		}

		body := fmt.Sprintf("Your appointment at %s on %s is confirmed.", p.ShopName, p.Date)
		err := notifSvc.SendUserPushNotification(ctx, p.UserID, "Appointment confirmed", body, map[string]string{
			"invoiceId": p.InvoiceID,
		})
		if err != nil {
			utils.GetLogger().Warn("booking push failed",
				zap.String("userId", p.UserID), zap.Error(err))
		}
		return err
	}
}

func handleReconcileSweep(repo bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		cutoff := time.Now().Add(-time.Duration(orphanVoidAfterHours()) * time.Hour)
		voided, err := repo.VoidOrphanedTransactions(ctx, cutoff)
		if err != nil {
			utils.GetLogger().Error("reconciliation sweep failed",
				zap.Int("voided", voided), zap.Error(err))
			return err
		}
		if voided > 0 {
			utils.GetLogger().Info("reconciliation sweep voided orphaned transactions",
				zap.Int("voided", voided))
		}
		return nil
	}
}

func orphanVoidAfterHours() int {
	hours := config.AppConfig.OrphanVoidAfterHours
	if hours <= 0 {
		hours = 24
	}
	return hours
}
