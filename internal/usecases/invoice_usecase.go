package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"payme.backend/internal/domain/entities"
	domainerrors "payme.backend/internal/domain/errors"
	domainRepos "payme.backend/internal/domain/repositories"
)

// InvoiceUsecase drives the invoice lifecycle: PENDING on creation, a single
// transition to PAID via MarkPaid, and idempotent deletion.
type InvoiceUsecase struct {
	invoiceRepo     domainRepos.InvoiceRepository
	uow             domainRepos.UnitOfWork
	frontendBaseURL string
	tempoChainID    string
	tempoRPC        string
}

func NewInvoiceUsecase(
	invoiceRepo domainRepos.InvoiceRepository,
	uow domainRepos.UnitOfWork,
	frontendBaseURL, tempoChainID, tempoRPC string,
) *InvoiceUsecase {
	return &InvoiceUsecase{
		invoiceRepo:     invoiceRepo,
		uow:             uow,
		frontendBaseURL: frontendBaseURL,
		tempoChainID:    tempoChainID,
		tempoRPC:        tempoRPC,
	}
}

type CreateInvoiceInput struct {
	MerchantAddress string
	CustomerEmail   string
	Amount          string
	TokenAddress    string
	Memo            string
}

// CreateInvoice creates a PENDING invoice. The memo defaults to a short code
// derived from the id, and the chain id / RPC URL are snapshotted from
// configuration at this moment, not looked up later. Merchant and token
// addresses are stored as given; only the caller-identity header is
// format-checked, at the middleware layer.
func (uc *InvoiceUsecase) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*entities.Invoice, error) {
	id := uuid.New()

	memo := input.Memo
	if memo == "" {
		memo = "INV-" + id.String()[:8]
	}

	invoice := &entities.Invoice{
		ID:              id,
		MerchantAddress: input.MerchantAddress,
		CustomerEmail:   input.CustomerEmail,
		Amount:          input.Amount,
		TokenAddress:    input.TokenAddress,
		Memo:            memo,
		Status:          entities.InvoiceStatusPending,
		CreatedAt:       time.Now().UTC(),
		PaymentLink:     fmt.Sprintf("%s/?invoiceId=%s", uc.frontendBaseURL, id),
		TempoChainID:    uc.tempoChainID,
		TempoRPC:        uc.tempoRPC,
	}

	// Write and read-back in one transaction so no concurrent reader can
	// observe a half-written invoice.
	var created *entities.Invoice
	err := uc.uow.Do(ctx, func(txCtx context.Context) error {
		if err := uc.invoiceRepo.Create(txCtx, invoice); err != nil {
			return err
		}
		var err error
		created, err = uc.invoiceRepo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListInvoices returns invoices newest-first, filtered to those where the
// wallet matches merchant or payer when a wallet is given.
func (uc *InvoiceUsecase) ListInvoices(ctx context.Context, wallet string) ([]*entities.Invoice, error) {
	return uc.invoiceRepo.List(ctx, wallet)
}

func (uc *InvoiceUsecase) GetInvoice(ctx context.Context, id uuid.UUID) (*entities.Invoice, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("invoice not found")
		}
		return nil, err
	}
	return invoice, nil
}

// MarkPaid transitions an invoice to PAID, setting paidAt, payerAddress and
// txHash together. Marking an already PAID invoice overwrites its paid
// metadata rather than erroring.
func (uc *InvoiceUsecase) MarkPaid(ctx context.Context, id uuid.UUID, txHash, payerAddress string) (*entities.Invoice, error) {
	var updated *entities.Invoice
	err := uc.uow.Do(ctx, func(txCtx context.Context) error {
		if err := uc.invoiceRepo.MarkPaid(txCtx, id, txHash, payerAddress, time.Now().UTC()); err != nil {
			return err
		}
		var err error
		updated, err = uc.invoiceRepo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("invoice not found")
		}
		return nil, err
	}
	return updated, nil
}

// DeleteInvoice removes an invoice. Deleting an unknown id is a no-op.
func (uc *InvoiceUsecase) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return uc.invoiceRepo.Delete(ctx, id)
}
