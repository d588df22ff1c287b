package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "payme.backend/internal/domain/errors"
	"payme.backend/internal/interfaces/http/middleware"
	"payme.backend/internal/interfaces/http/response"
	"payme.backend/internal/usecases"
)

type ContactHandler struct {
	usecase *usecases.ContactUsecase
}

func NewContactHandler(usecase *usecases.ContactUsecase) *ContactHandler {
	return &ContactHandler{usecase: usecase}
}

type CreateContactRequest struct {
	OwnerWallet   string `json:"ownerWallet" binding:"required"`
	Name          string `json:"name" binding:"required"`
	WalletAddress string `json:"walletAddress" binding:"required"`
	Email         string `json:"email"`
}

// CreateContact creates a new address-book entry
// POST /api/contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	contact, err := h.usecase.CreateContact(c.Request.Context(), usecases.CreateContactInput{
		OwnerWallet:   req.OwnerWallet,
		Name:          req.Name,
		WalletAddress: req.WalletAddress,
		Email:         req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, contact)
}

// ListContacts lists contacts, scoped to an owner wallet when given
// GET /api/contacts?wallet=
func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.usecase.ListContacts(c.Request.Context(), c.Query("wallet"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, contacts)
}

// DeleteContact removes a contact owned by the caller; deleting an unknown
// id still returns 204, deleting another wallet's contact is a 403
// DELETE /api/contacts/:id
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNoContent)
		return
	}

	caller, ok := middleware.GetWalletAddress(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("wallet address required"))
		return
	}

	if err := h.usecase.DeleteContact(c.Request.Context(), id, caller); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
