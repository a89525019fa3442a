package model

import "time"

// Block is an active restriction on a client or device identity.
// A nil BlockedUntil means the block is permanent.
type Block struct {
	ID           int64
	Key          string
	Reason       string
	BlockedUntil *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ActiveAt reports whether the block is still in force at the given time.
// Expired rows may linger until the sweeper purges them; every reader must
// treat them as unblocked.
func (b Block) ActiveAt(now time.Time) bool {
	return b.BlockedUntil == nil || b.BlockedUntil.After(now)
}
