package entities

import "github.com/google/uuid"

// Contact is a saved address-book entry scoped to an owning wallet.
// The wallet address serializes as "address" in the API.
type Contact struct {
	ID            uuid.UUID `json:"id"`
	OwnerWallet   string    `json:"ownerWallet"`
	Name          string    `json:"name"`
	WalletAddress string    `json:"address"`
	Email         string    `json:"email"`
}
