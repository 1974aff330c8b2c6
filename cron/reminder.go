// Package cron runs the asynq-based lesson reminder worker.
package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"driveline/config"
	"driveline/models"
	"driveline/services/notification"
	"driveline/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeLessonReminder = "reminder:lesson"

// reminderLead is how long before the lesson the reminder fires.
const reminderLead = 24 * time.Hour

// LessonReminderPayload is the task body for a scheduled lesson reminder.
type LessonReminderPayload struct {
	BookingID int    `json:"bookingId"`
	StudentID int    `json:"studentId"`
	LessonAt  string `json:"lessonAt"` // RFC3339, UTC
	Suburb    string `json:"suburb"`
}

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderScheduler enqueues lesson reminder tasks on the asynq queue.
type ReminderScheduler struct {
	client *asynq.Client
}

func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{client: asynq.NewClient(redisOpt())}
}

// ScheduleLessonReminder queues a reminder 24h before the lesson. Lessons
// closer than that get no reminder.
func (s *ReminderScheduler) ScheduleLessonReminder(ctx context.Context, studentID int, lessonAt time.Time, booking models.Booking) error {
	fireAt := lessonAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(LessonReminderPayload{
		BookingID: booking.ID,
		StudentID: studentID,
		LessonAt:  lessonAt.UTC().Format(time.RFC3339),
		Suburb:    booking.Suburb,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeLessonReminder, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt), asynq.Queue("default")); err != nil {
		return fmt.Errorf("failed to enqueue lesson reminder: %w", err)
	}
	return nil
}

// StartReminderWorker runs the asynq worker in the background.
func StartReminderWorker(push notification.PushService) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeLessonReminder, handleLessonReminder(push, logger))

	go func() {
		logger.Info("starting lesson reminder worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("lesson reminder worker stopped", zap.Error(err))
		}
	}()
}

func handleLessonReminder(push notification.PushService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p LessonReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid lesson reminder payload", zap.Error(err))
			return err
		}

		body := fmt.Sprintf("Your driving lesson is coming up on %s.", p.LessonAt)
		if p.Suburb != "" {
			body = fmt.Sprintf("Your driving lesson in %s is coming up on %s.", p.Suburb, p.LessonAt)
		}

		data := map[string]string{
			"bookingId": fmt.Sprintf("%d", p.BookingID),
			"lessonAt":  p.LessonAt,
		}
		if err := push.SendPush(ctx, p.StudentID, "Lesson reminder", body, data); err != nil {
			logger.Warn("failed to deliver lesson reminder",
				zap.Int("bookingId", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
