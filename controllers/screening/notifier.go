package screeningController

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"visiocheck/config"
	"visiocheck/database"
	"visiocheck/models"
	"visiocheck/screening"
	"visiocheck/utils"
)

// resultNotifier persists completed results and pushes them to the configured
// webhook and the user's email. Every step is best-effort: the session engine
// already runs these calls in the background and only logs failures.
type resultNotifier struct{}

// NewNotifier returns the production screening.Notifier.
func NewNotifier() screening.Notifier {
	return resultNotifier{}
}

func (resultNotifier) ModuleCompleted(sessionID string, profile screening.Profile, result screening.ModuleResult) error {
	responses, err := json.Marshal(result.Responses)
	if err != nil {
		return fmt.Errorf("encode responses: %w", err)
	}

	record := models.ModuleResultRecord{
		SessionID:   sessionID,
		UserID:      profile.UserID,
		ModuleType:  string(result.Module),
		Score:       result.Score,
		Level:       result.Level,
		Responses:   responses,
		CompletedAt: result.CompletedAt,
	}

	if err := database.Database.Db.Create(&record).Error; err != nil {
		return fmt.Errorf("persist module result: %w", err)
	}
	return nil
}

func (resultNotifier) SessionCompleted(result screening.SessionResult, profile screening.Profile) error {
	results, err := json.Marshal(result.Results)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	record := models.SessionResultRecord{
		SessionID:    result.SessionID,
		UserID:       result.UserID,
		OverallScore: result.OverallScore,
		Results:      results,
		CompletedAt:  result.CompletedAt,
	}

	if err := database.Database.Db.Create(&record).Error; err != nil {
		// Persistence failure never blocks the rest of the fan-out.
		log.Printf("[SCREENING] failed to persist session result %s: %v", result.SessionID, err)
	}

	enqueueWebhook(result, profile)

	if profile.Email != "" {
		recommendations := screening.Recommendations(result, profile)
		if err := utils.SendResultsEmail(profile.Email, profile.Name, result, recommendations); err != nil {
			log.Printf("[SCREENING] failed to email results for session %s: %v", result.SessionID, err)
		}
	}

	return nil
}

// webhookPayload is the document posted to the results webhook.
type webhookPayload struct {
	UserID    uint                    `json:"userId"`
	Profile   screening.Profile       `json:"userProfile"`
	Session   screening.SessionResult `json:"session"`
	Timestamp string                  `json:"timestamp"`
}

// enqueueWebhook stores the delivery and makes a first attempt immediately;
// the scheduler retries anything that did not go through.
func enqueueWebhook(result screening.SessionResult, profile screening.Profile) {
	url := config.AppConfig.WebhookURL
	if url == "" {
		return
	}

	payload, err := json.Marshal(webhookPayload{
		UserID:    result.UserID,
		Profile:   profile,
		Session:   result,
		Timestamp: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("[SCREENING] failed to encode webhook payload for session %s: %v", result.SessionID, err)
		return
	}

	delivery := models.WebhookDelivery{
		SessionID: result.SessionID,
		URL:       url,
		Payload:   payload,
		Status:    models.DeliveryStatusPending,
	}

	attemptAt := time.Now()
	delivery.Attempts = 1
	delivery.LastAttemptAt = &attemptAt
	if err := utils.SendWebhook(url, payload); err != nil {
		delivery.Status = models.DeliveryStatusFailed
		delivery.LastError = err.Error()
		log.Printf("[SCREENING] webhook delivery for session %s failed, queued for retry: %v", result.SessionID, err)
	} else {
		delivery.Status = models.DeliveryStatusDelivered
	}

	if err := database.Database.Db.Create(&delivery).Error; err != nil {
		log.Printf("[SCREENING] failed to queue webhook delivery for session %s: %v", result.SessionID, err)
	}
}
