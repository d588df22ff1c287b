package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "payme.backend/internal/domain/errors"
	"payme.backend/internal/interfaces/http/response"
	"payme.backend/internal/usecases"
)

type InvoiceHandler struct {
	usecase *usecases.InvoiceUsecase
}

func NewInvoiceHandler(usecase *usecases.InvoiceUsecase) *InvoiceHandler {
	return &InvoiceHandler{usecase: usecase}
}

type CreateInvoiceRequest struct {
	MerchantAddress string  `json:"merchantAddress" binding:"required"`
	CustomerEmail   string  `json:"customerEmail"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	TokenAddress    string  `json:"tokenAddress" binding:"required"`
	Memo            string  `json:"memo"`
}

type MarkPaidRequest struct {
	TxHash       string `json:"txHash"`
	PayerAddress string `json:"payerAddress"`
}

// CreateInvoice creates a new pending invoice
// POST /api/invoices
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	invoice, err := h.usecase.CreateInvoice(c.Request.Context(), usecases.CreateInvoiceInput{
		MerchantAddress: req.MerchantAddress,
		CustomerEmail:   req.CustomerEmail,
		Amount:          strconv.FormatFloat(req.Amount, 'f', -1, 64),
		TokenAddress:    req.TokenAddress,
		Memo:            req.Memo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, invoice)
}

// ListInvoices lists invoices, optionally filtered to a wallet that matches
// merchant or payer
// GET /api/invoices?wallet=
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.ListInvoices(c.Request.Context(), c.Query("wallet"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, invoices)
}

// GetInvoice gets an invoice by ID
// GET /api/invoices/:id
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id cannot name an invoice
		response.Error(c, domainerrors.NotFound("invoice not found"))
		return
	}

	invoice, err := h.usecase.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, invoice)
}

// MarkPaid transitions an invoice to PAID
// POST /api/invoices/:id/pay
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("invoice not found"))
		return
	}

	var req MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	invoice, err := h.usecase.MarkPaid(c.Request.Context(), id, req.TxHash, req.PayerAddress)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, invoice)
}

// DeleteInvoice removes an invoice; deleting an unknown id still returns 204
// DELETE /api/invoices/:id
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.usecase.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
