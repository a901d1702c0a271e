package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ModuleResultRecord persists one completed screening module. Responses are
// stored as a JSON array with per-response correctness and timestamp.
type ModuleResultRecord struct {
	gorm.Model
	SessionID   string         `json:"sessionId" gorm:"index;not null"`
	UserID      uint           `json:"userId" gorm:"index;not null"`
	ModuleType  string         `json:"moduleType" gorm:"not null"`
	Score       int            `json:"score"`
	Level       int            `json:"level"`
	Responses   datatypes.JSON `json:"responses"`
	CompletedAt time.Time      `json:"completedAt"`
	IsDeleted   bool           `json:"-" gorm:"default:false"`
}

// SessionResultRecord persists the aggregated outcome of a whole session.
type SessionResultRecord struct {
	gorm.Model
	SessionID    string         `json:"sessionId" gorm:"uniqueIndex;not null"`
	UserID       uint           `json:"userId" gorm:"index;not null"`
	OverallScore int            `json:"overallScore"`
	Results      datatypes.JSON `json:"results"`
	CompletedAt  time.Time      `json:"completedAt"`
	IsDeleted    bool           `json:"-" gorm:"default:false"`
}
