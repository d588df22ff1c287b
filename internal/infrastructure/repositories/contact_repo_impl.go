package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"payme.backend/internal/domain/entities"
	domainerrors "payme.backend/internal/domain/errors"
	"payme.backend/internal/infrastructure/models"
)

// ContactRepositoryImpl implements ContactRepository
type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepositoryImpl {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *entities.Contact) error {
	now := time.Now()
	m := &models.Contact{
		ID:            contact.ID,
		OwnerWallet:   contact.OwnerWallet,
		Name:          contact.Name,
		WalletAddress: contact.WalletAddress,
		Email:         contact.Email,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *ContactRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error) {
	var m models.Contact
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ContactRepositoryImpl) List(ctx context.Context, ownerWallet string) ([]*entities.Contact, error) {
	q := GetDB(ctx, r.db).WithContext(ctx)
	if ownerWallet != "" {
		q = q.Where("LOWER(owner_wallet) = LOWER(?)", ownerWallet)
	}

	var ms []models.Contact
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}

	contacts := make([]*entities.Contact, 0, len(ms))
	for _, m := range ms {
		model := m
		contacts = append(contacts, r.toEntity(&model))
	}
	return contacts, nil
}

func (r *ContactRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.Contact{}).Error
}

func (r *ContactRepositoryImpl) toEntity(m *models.Contact) *entities.Contact {
	return &entities.Contact{
		ID:            m.ID,
		OwnerWallet:   m.OwnerWallet,
		Name:          m.Name,
		WalletAddress: m.WalletAddress,
		Email:         m.Email,
	}
}
