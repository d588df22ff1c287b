package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"payme.backend/internal/domain/entities"
	domainerrors "payme.backend/internal/domain/errors"
	domainRepos "payme.backend/internal/domain/repositories"
)

// ContactUsecase manages the wallet-scoped address book
type ContactUsecase struct {
	contactRepo domainRepos.ContactRepository
}

func NewContactUsecase(contactRepo domainRepos.ContactRepository) *ContactUsecase {
	return &ContactUsecase{contactRepo: contactRepo}
}

type CreateContactInput struct {
	OwnerWallet   string
	Name          string
	WalletAddress string
	Email         string
}

func (uc *ContactUsecase) CreateContact(ctx context.Context, input CreateContactInput) (*entities.Contact, error) {
	contact := &entities.Contact{
		ID:            uuid.New(),
		OwnerWallet:   input.OwnerWallet,
		Name:          input.Name,
		WalletAddress: input.WalletAddress,
		Email:         input.Email,
	}
	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (uc *ContactUsecase) ListContacts(ctx context.Context, wallet string) ([]*entities.Contact, error) {
	return uc.contactRepo.List(ctx, wallet)
}

// DeleteContact removes a contact. Deleting an unknown id is a no-op, but an
// existing contact may only be removed by its owning wallet.
func (uc *ContactUsecase) DeleteContact(ctx context.Context, id uuid.UUID, callerWallet string) error {
	contact, err := uc.contactRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}

	if !strings.EqualFold(contact.OwnerWallet, callerWallet) {
		return domainerrors.Forbidden("contact belongs to another wallet")
	}

	return uc.contactRepo.Delete(ctx, id)
}
