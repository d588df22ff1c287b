package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"payme.backend/internal/domain/entities"
)

// InvoiceRepository interface
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entities.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error)
	// List returns invoices newest-first. When wallet is non-empty only
	// invoices whose merchant or payer address matches it
	// (case-insensitively) are returned.
	List(ctx context.Context, wallet string) ([]*entities.Invoice, error)
	// MarkPaid sets status PAID and the paid fields together. It is a no-op
	// when the id is unknown; callers detect that via the read-back.
	MarkPaid(ctx context.Context, id uuid.UUID, txHash, payerAddress string, paidAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}
