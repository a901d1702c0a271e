package utils

import (
	"log"
	"time"

	"visiocheck/config"
	"visiocheck/database"
	"visiocheck/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[WEBHOOK-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// processPendingDeliveries retries queued webhook deliveries that have not
// exhausted their attempt budget. Failures stay queued for the next run.
func processPendingDeliveries() {
	db := database.Database.Db

	var deliveries []models.WebhookDelivery
	if err := db.Where("status IN ? AND attempts < ? AND is_deleted = false",
		[]string{models.DeliveryStatusPending, models.DeliveryStatusFailed},
		config.AppConfig.WebhookMaxAttempts,
	).Find(&deliveries).Error; err != nil {
		logScheduler("Error fetching pending deliveries: " + err.Error())
		return
	}

	for i := range deliveries {
		delivery := &deliveries[i]
		attemptAt := time.Now()
		delivery.Attempts++
		delivery.LastAttemptAt = &attemptAt

		if err := SendWebhook(delivery.URL, delivery.Payload); err != nil {
			delivery.Status = models.DeliveryStatusFailed
			delivery.LastError = err.Error()
			logScheduler("Delivery for session " + delivery.SessionID + " failed: " + err.Error())
		} else {
			delivery.Status = models.DeliveryStatusDelivered
			delivery.LastError = ""
			logScheduler("Delivery for session " + delivery.SessionID + " succeeded")
		}

		if err := db.Save(delivery).Error; err != nil {
			logScheduler("Error saving delivery state: " + err.Error())
		}
	}
}

// purgeOldDeliveries soft-deletes delivered rows from before today.
func purgeOldDeliveries() {
	db := database.Database.Db

	result := db.Model(&models.WebhookDelivery{}).
		Where("status = ? AND updated_at < ? AND is_deleted = false",
			models.DeliveryStatusDelivered, now.BeginningOfDay()).
		Update("is_deleted", true)
	if result.Error != nil {
		logScheduler("Error purging delivered webhooks: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Purged delivered webhook rows")
	}
}

// StartWebhookScheduler wires the retry and purge jobs.
func StartWebhookScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("*/5 * * * *", processPendingDeliveries); err != nil {
		log.Fatalf("Failed to schedule webhook retries: %v", err)
	}
	if _, err := c.AddFunc("0 3 * * *", purgeOldDeliveries); err != nil {
		log.Fatalf("Failed to schedule webhook purge: %v", err)
	}

	c.Start()
	logScheduler("Webhook scheduler started")
}
