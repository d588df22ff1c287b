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

// InvoiceRepositoryImpl implements InvoiceRepository
type InvoiceRepositoryImpl struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepositoryImpl {
	return &InvoiceRepositoryImpl{db: db}
}

func (r *InvoiceRepositoryImpl) Create(ctx context.Context, inv *entities.Invoice) error {
	m := &models.Invoice{
		ID:              inv.ID,
		MerchantAddress: inv.MerchantAddress,
		CustomerEmail:   inv.CustomerEmail,
		Amount:          inv.Amount,
		TokenAddress:    inv.TokenAddress,
		Memo:            inv.Memo,
		Status:          string(inv.Status),
		PaymentLink:     inv.PaymentLink,
		TempoChainID:    inv.TempoChainID,
		TempoRPC:        inv.TempoRPC,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *InvoiceRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error) {
	var m models.Invoice
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *InvoiceRepositoryImpl) List(ctx context.Context, wallet string) ([]*entities.Invoice, error) {
	q := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC")
	if wallet != "" {
		q = q.Where("LOWER(merchant_address) = LOWER(?) OR LOWER(payer_address) = LOWER(?)", wallet, wallet)
	}

	var ms []models.Invoice
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}

	invoices := make([]*entities.Invoice, 0, len(ms))
	for _, m := range ms {
		model := m
		invoices = append(invoices, r.toEntity(&model))
	}
	return invoices, nil
}

// MarkPaid overwrites the paid fields unconditionally; re-paying an already
// PAID invoice replaces its paid metadata.
func (r *InvoiceRepositoryImpl) MarkPaid(ctx context.Context, id uuid.UUID, txHash, payerAddress string, paidAt time.Time) error {
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        string(entities.InvoiceStatusPaid),
			"paid_at":       paidAt,
			"tempo_tx_hash": txHash,
			"payer_address": payerAddress,
			"updated_at":    paidAt,
		}).Error
}

func (r *InvoiceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.Invoice{}).Error
}

func (r *InvoiceRepositoryImpl) toEntity(m *models.Invoice) *entities.Invoice {
	return &entities.Invoice{
		ID:              m.ID,
		MerchantAddress: m.MerchantAddress,
		CustomerEmail:   m.CustomerEmail,
		Amount:          m.Amount,
		TokenAddress:    m.TokenAddress,
		Memo:            m.Memo,
		Status:          entities.InvoiceStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		PaidAt:          m.PaidAt,
		PayerAddress:    m.PayerAddress,
		TxHash:          m.TempoTxHash,
		PaymentLink:     m.PaymentLink,
		TempoChainID:    m.TempoChainID,
		TempoRPC:        m.TempoRPC,
	}
}
