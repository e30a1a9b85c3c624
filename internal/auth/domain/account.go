package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is the resource-owning tenant. Every expense belongs to exactly one
// account, and authorization compares the requester's account against the
// resource's account. Credentials live on AuthUser; the account only anchors
// ownership.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
