package model

import "time"

const (
	DefaultMaxOrdersPerWindow = 20
	DefaultWindowMinutes      = 15
)

// TenantAdmissionConfig holds a tenant's busy-mode settings.
// BusyModeStartedAt is bookkeeping only: set when busy state begins,
// cleared when it ends.
type TenantAdmissionConfig struct {
	TenantID           int64
	ManualBusy         bool
	MaxOrdersPerWindow int
	WindowMinutes      int
	BusyModeStartedAt  *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Window returns the rolling window used for automatic busy-mode counting.
func (c TenantAdmissionConfig) Window() time.Duration {
	return time.Duration(c.WindowMinutes) * time.Minute
}
