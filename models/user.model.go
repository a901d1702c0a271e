package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserProfile holds the self-reported attributes collected at registration.
// Immutable once created; a session references it, never changes it.
type UserProfile struct {
	gorm.Model
	Name               string         `json:"name" gorm:"not null"`
	Email              string         `json:"email" gorm:"default:''"`
	Age                int            `json:"age" gorm:"not null"`
	Gender             string         `json:"gender" gorm:"not null"` // male, female, other
	Phone              string         `json:"phone" gorm:"default:''"`
	City               string         `json:"city" gorm:"default:''"`
	UsesGlasses        bool           `json:"usesGlasses" gorm:"default:false"`
	LensType           string         `json:"lensType" gorm:"default:''"` // near, distance, multifocal, bifocal
	VisualDifficulties datatypes.JSON `json:"visualDifficulties"`
	HealthHistory      datatypes.JSON `json:"healthHistory"`
	IsDeleted          bool           `json:"-" gorm:"default:false"`
}
