package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

// Invoice is the persistence model for invoices. Columns are snake_case;
// translation to the camelCase API shape happens in the repository layer.
type Invoice struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey"`
	MerchantAddress string      `gorm:"type:varchar(255);not null;index"`
	CustomerEmail   string      `gorm:"type:varchar(255)"`
	Amount          string      `gorm:"type:decimal(36,18);not null"`
	TokenAddress    string      `gorm:"type:varchar(255);not null"`
	Memo            string      `gorm:"type:text"`
	Status          string      `gorm:"type:varchar(50);not null;index"`
	PaidAt          null.Time   `gorm:"column:paid_at;type:timestamp"`
	PayerAddress    null.String `gorm:"type:varchar(255);index"`
	TempoTxHash     null.String `gorm:"column:tempo_tx_hash;type:varchar(255)"`
	PaymentLink     string      `gorm:"type:text"`
	TempoChainID    string      `gorm:"column:tempo_chain_id;type:varchar(50)"`
	TempoRPC        string      `gorm:"column:tempo_rpc;type:text"`
	CreatedAt       time.Time   `gorm:"index"`
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
