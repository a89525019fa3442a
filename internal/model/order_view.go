package model

import "time"

// OrderStatus mirrors the order store's status column.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsTerminal reports whether the order no longer counts toward active-order
// or busy-mode totals.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// OrderView is the read-only projection the admission gates consume from the
// external order store.
type OrderView struct {
	ID             int64
	Code           string
	DeviceIdentity *string
	TenantID       int64
	Status         OrderStatus
	CreatedAt      time.Time
}
