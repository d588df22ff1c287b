package repositories

import (
	"context"

	"github.com/google/uuid"
	"payme.backend/internal/domain/entities"
)

// ContactRepository interface
type ContactRepository interface {
	Create(ctx context.Context, contact *entities.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error)
	// List returns contacts owned by ownerWallet (case-insensitive match),
	// or all contacts when ownerWallet is empty.
	List(ctx context.Context, ownerWallet string) ([]*entities.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
