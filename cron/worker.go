package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"furytails/config"
	bookingRepo "furytails/database/repository/booking"
	"furytails/models"
	"furytails/services/notification"
	"furytails/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitWorker runs the async worker and the daily scheduler in background.
func InitWorker(notifSvc notification.NotificationService, bookings bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeDailyDigest, handleDailyDigest(notifSvc, bookings))
	mux.HandleFunc(tasks.TypeFeedingReminder, handleFeedingReminder(notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Enqueue the digest and feeding reminders once per day.
	go runDailyScheduler(redisOpts, bookings)

	// Start async worker with retry logic
	go func() {
		log.Println("[CronWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CronWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[CronWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// runDailyScheduler fires once a day at the configured hour. A Redis
// marker keyed by date keeps restarts from double-sending the digest.
func runDailyScheduler(redisOpts asynq.RedisClientOpt, bookings bookingRepo.BookingRepository) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	marker := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	ctx := context.Background()

	for {
		now := time.Now()
		fireAt := time.Date(now.Year(), now.Month(), now.Day(), config.AppConfig.DailyDigestHour, 0, 0, 0, now.Location())
		if !fireAt.After(now) {
			fireAt = fireAt.AddDate(0, 0, 1)
		}
		time.Sleep(time.Until(fireAt))

		date := time.Now().Format("2006-01-02")
		ok, err := marker.SetNX(ctx, "digest:sent:"+date, "1", 36*time.Hour).Result()
		if err != nil {
			log.Printf("[CronWorker] digest marker check failed: %v", err)
			continue
		}
		if !ok {
			continue // already sent today
		}

		task, opts, err := tasks.NewDailyDigestTask(tasks.DailyDigestPayload{Date: date})
		if err == nil {
			_, err = client.Enqueue(task, opts...)
		}
		if err != nil {
			log.Printf("[CronWorker] failed to enqueue daily digest: %v", err)
		}

		scheduleFeedingReminders(client, bookings, date)
	}
}

// scheduleFeedingReminders enqueues a reminder for each feeding slot of
// today's in-house pets that is still ahead of us.
func scheduleFeedingReminders(client *asynq.Client, bookings bookingRepo.BookingRepository, date string) {
	inHouse, err := bookings.GetByStatuses([]string{models.StatusCheckedIn, models.StatusExtended})
	if err != nil {
		log.Printf("[CronWorker] failed to list in-house pets: %v", err)
		return
	}

	now := time.Now()
	for i := range inHouse {
		b := &inHouse[i]
		if b.FeedingDetails == nil {
			continue
		}
		for _, slot := range feedingSlots(b.FeedingDetails) {
			t, err := time.Parse("15:04", slot)
			if err != nil {
				continue
			}
			fireAt := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
			if !fireAt.After(now) {
				continue
			}
			payload := tasks.FeedingReminderPayload{
				BookingID: b.ID,
				PetName:   b.PetInformation.PetName,
				Time:      slot,
			}
			task, opts, err := tasks.NewFeedingReminderTask(payload, fireAt)
			if err == nil {
				_, err = client.Enqueue(task, opts...)
			}
			if err != nil {
				log.Printf("[CronWorker] failed to enqueue feeding reminder for %s: %v", b.ID, err)
			}
		}
	}
}

// feedingSlots collects the enabled feeding times of a booking.
func feedingSlots(fd *models.FeedingDetails) []string {
	var slots []string
	if fd.MorningFeeding && fd.MorningTime != "" {
		slots = append(slots, fd.MorningTime)
	}
	if fd.AfternoonFeeding && fd.AfternoonTime != "" {
		slots = append(slots, fd.AfternoonTime)
	}
	if fd.EveningFeeding && fd.EveningTime != "" {
		slots = append(slots, fd.EveningTime)
	}
	return slots
}

func handleDailyDigest(notifSvc notification.NotificationService, bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.DailyDigestPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[DigestHandler] invalid payload: %v", err)
			return err
		}

		todays, err := bookings.GetByDate(p.Date)
		if err != nil {
			return err
		}
		if len(todays) == 0 {
			return nil
		}

		var pending, approved, checkedIn int
		for i := range todays {
			switch todays[i].Status {
			case models.StatusPending:
				pending++
			case models.StatusApproved:
				approved++
			case models.StatusCheckedIn:
				checkedIn++
			}
		}

		body := fmt.Sprintf("You have %d booking(s) scheduled for today: %d ready for check-in, %d pending review, %d already checked in.",
			len(todays), approved, pending, checkedIn)
		data := map[string]string{"date": p.Date, "total": fmt.Sprint(len(todays))}

		if err := notifSvc.SendAdminPush(ctx, "Today's Bookings", body, data); err != nil {
			log.Printf("[DigestHandler] failed to send digest: %v", err)
			return err
		}
		return nil
	}
}

func handleFeedingReminder(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.FeedingReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[FeedingHandler] invalid payload: %v", err)
			return err
		}

		body := fmt.Sprintf("%s is due for feeding at %s.", p.PetName, p.Time)
		data := map[string]string{"bookingId": p.BookingID, "time": p.Time}

		if err := notifSvc.SendAdminPush(ctx, "Feeding Reminder", body, data); err != nil {
			log.Printf("[FeedingHandler] failed to send reminder: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[CronWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
