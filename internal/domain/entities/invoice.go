package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "PENDING"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
)

// Invoice represents a requested payment from a payer to a merchant for a
// token amount. Status only ever moves PENDING -> PAID; PaidAt, PayerAddress
// and TxHash stay null until that transition and are set together.
type Invoice struct {
	ID              uuid.UUID     `json:"id"`
	MerchantAddress string        `json:"merchantAddress"`
	CustomerEmail   string        `json:"customerEmail,omitempty"`
	Amount          string        `json:"amount"`
	TokenAddress    string        `json:"tokenAddress"`
	Memo            string        `json:"memo"`
	Status          InvoiceStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	PaidAt          null.Time     `json:"paidAt"`
	PayerAddress    null.String   `json:"payerAddress"`
	TxHash          null.String   `json:"txHash"`
	PaymentLink     string        `json:"paymentLink"`
	TempoChainID    string        `json:"tempoChainId"`
	TempoRPC        string        `json:"tempoRpc"`
}
