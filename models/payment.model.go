package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentMethodPix        = "pix"
	PaymentMethodCreditCard = "credit_card"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"
)

// PaymentTransaction records one simulated payment attempt. A completed
// transaction unlocks the screening session for the user.
type PaymentTransaction struct {
	gorm.Model
	UserID        uint       `json:"userId" gorm:"index;not null"`
	Amount        float64    `json:"amount" gorm:"not null"`
	Method        string     `json:"method" gorm:"not null"`
	Status        string     `json:"status" gorm:"not null;default:'pending'"`
	TransactionID string     `json:"transactionId" gorm:"uniqueIndex;not null"`
	PixCode       string     `json:"pixCode,omitempty" gorm:"default:''"`
	CardLast4     string     `json:"cardLast4,omitempty" gorm:"default:''"`
	FailureReason string     `json:"failureReason,omitempty" gorm:"default:''"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	IsDeleted     bool       `json:"-" gorm:"default:false"`
}
