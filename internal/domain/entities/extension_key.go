package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ExtensionKeyPrefix is the required prefix of every issued key value.
const ExtensionKeyPrefix = "sk_"

// InitialExtensionKeyName is the display name of the key minted during install.
const InitialExtensionKeyName = "Access Key Inicial"

// DefaultExtensionKeyName is used when a create request omits the name.
const DefaultExtensionKeyName = "New Access Key"

// ExtensionKey is a long-lived opaque bearer credential issued to the
// companion browser extension. The key value is `sk_` + 32 random bytes hex
// and is unique across all shops.
type ExtensionKey struct {
	ID         uuid.UUID `json:"id"`
	ShopDomain string    `json:"-"`
	Key        string    `json:"key"`
	Name       string    `json:"name"`
	IsActive   bool      `json:"-"`
	LastUsedAt null.Time `json:"lastUsedAt,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"-"`
}

// CreateExtensionKeyInput is the payload for the create endpoint.
type CreateExtensionKeyInput struct {
	Name string `json:"name"`
}
