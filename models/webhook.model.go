package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusFailed    = "failed"
)

// WebhookDelivery queues one result payload for best-effort delivery to the
// configured webhook. Failed deliveries are retried by the scheduler until
// the attempt limit is reached.
type WebhookDelivery struct {
	gorm.Model
	SessionID     string         `json:"sessionId" gorm:"index;not null"`
	URL           string         `json:"url" gorm:"not null"`
	Payload       datatypes.JSON `json:"payload"`
	Status        string         `json:"status" gorm:"default:'pending'"`
	Attempts      int            `json:"attempts" gorm:"default:0"`
	LastError     string         `json:"lastError,omitempty" gorm:"default:''"`
	LastAttemptAt *time.Time     `json:"lastAttemptAt,omitempty"`
	IsDeleted     bool           `json:"-" gorm:"default:false"`
}
