package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is the persistence model for address-book entries
type Contact struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerWallet   string    `gorm:"type:varchar(255);not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	WalletAddress string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
