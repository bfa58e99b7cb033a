package sessionpool

import "github.com/google/uuid"

// NewID mints a random session id. Backends accept any non-empty string as
// an id, so hosts with their own id scheme can ignore this helper.
func NewID() string {
	return uuid.NewString()
}
