package model

import "time"

// IncidentKind classifies an abuse-relevant event.
type IncidentKind string

const (
	KindRateLimitExceeded    IncidentKind = "rate_limit_exceeded"
	KindRateLimitBlocked     IncidentKind = "rate_limit_blocked"
	KindDeviceSpamAttempt    IncidentKind = "device_spam_attempt"
	KindDeviceBlockedAttempt IncidentKind = "device_blocked_attempt"
	KindDeviceCheckError     IncidentKind = "device_check_error"
	KindBusyModeManualBlock  IncidentKind = "busy_mode_manual_block"
	KindBusyModeAutoBlock    IncidentKind = "busy_mode_auto_block"
	KindBusyModeEnabled      IncidentKind = "busy_mode_enabled"
	KindBusyModeDisabled     IncidentKind = "busy_mode_disabled"
	KindBusyModeConfigUpdate IncidentKind = "busy_mode_config_updated"
	KindBusyModeCheckError   IncidentKind = "busy_mode_check_error"
)

// Incident is an append-only record of one abuse-relevant event. Rows are
// never updated or deleted by normal operation.
type Incident struct {
	ID             int64
	ClientIdentity *string
	DeviceIdentity *string
	TenantID       *int64
	Kind           IncidentKind
	Details        *string
	OccurredAt     time.Time
}
