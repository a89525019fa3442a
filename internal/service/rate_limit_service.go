//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"shopgate/backend/internal/model"
	"shopgate/backend/internal/repository"
	"shopgate/backend/pkg/logger"
)

const (
	// RateLimitWindow is the sliding window for per-client admission attempts.
	RateLimitWindow = 10 * time.Minute
	// RateLimitMaxAttempts is the attempt cap inside one window.
	RateLimitMaxAttempts = 5
	// RateLimitCooldown is the self-imposed block after exceeding the cap.
	RateLimitCooldown = 10 * time.Minute
)

// RateLimitDecision is the outcome of one Admit call.
type RateLimitDecision struct {
	Allowed bool
	// Unverified marks requests admitted without a client identity
	// (fail-open), for downstream diagnostics.
	Unverified        bool
	RetryAfterSeconds int
	Message           string
}

// RateLimitStatus is the read-only view for dashboards and the order
// endpoint.
type RateLimitStatus struct {
	Attempts     int
	Limit        int
	Blocked      bool
	BlockedUntil *time.Time
}

type RateLimitService interface {
	Admit(ctx context.Context, clientIdentity string, tenantID int64) RateLimitDecision
	Status(ctx context.Context, clientIdentity string, tenantID int64) (RateLimitStatus, error)
}

type rateLimitService struct {
	windows   WindowStore
	blocks    repository.BlockRepository
	incidents IncidentService
}

// NewRateLimitService creates the sliding-window admission gate. blocks is
// the client flavor of the block registry: clients escalated by the sweeper
// or blocked by an operator are denied here, not only listed in the admin
// API.
func NewRateLimitService(windows WindowStore, blocks repository.BlockRepository, incidents IncidentService) RateLimitService {
	return &rateLimitService{windows: windows, blocks: blocks, incidents: incidents}
}

func (s *rateLimitService) Admit(ctx context.Context, clientIdentity string, tenantID int64) RateLimitDecision {
	client := strings.TrimSpace(clientIdentity)
	if client == "" {
		// Anonymous traffic is admitted rather than collectively blocked.
		logger.Warn("rate limit check without client identity", "tenantId", tenantID)
		return RateLimitDecision{Allowed: true, Unverified: true}
	}

	now := time.Now().UTC()

	block, err := s.blocks.GetByKey(ctx, client)
	if err != nil {
		// Registry fault degrades protection, never availability.
		logger.Warn("client block lookup failed", "client", client, "tenantId", tenantID, "error", err)
	} else if block != nil && block.ActiveAt(now) {
		retryAfter := 0
		message := "ordering is currently restricted"
		if block.BlockedUntil != nil {
			remaining := block.BlockedUntil.Sub(now)
			retryAfter = int(remaining.Round(time.Second).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			message = fmt.Sprintf("too many order attempts, please try again in %s", waitText(remaining))
		}
		s.incidents.Record(ctx, model.Incident{
			ClientIdentity: strPtr(client),
			TenantID:       int64Ptr(tenantID),
			Kind:           model.KindRateLimitBlocked,
			Details: detailsJSON(map[string]interface{}{
				"source": "block_registry",
				"reason": block.Reason,
			}),
			OccurredAt: now,
		})
		return RateLimitDecision{
			RetryAfterSeconds: retryAfter,
			Message:           message,
		}
	}

	hit, err := s.windows.Hit(ctx, windowKey(client, tenantID), now)
	if err != nil {
		// Window store fault degrades protection, never availability.
		logger.Warn("rate limit window store unavailable", "client", client, "tenantId", tenantID, "error", err)
		return RateLimitDecision{Allowed: true, Unverified: true}
	}

	if hit.Allowed {
		return RateLimitDecision{Allowed: true}
	}

	retryAfter := int(hit.RetryAfter.Round(time.Second).Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}

	kind := model.KindRateLimitBlocked
	if hit.JustBlocked {
		kind = model.KindRateLimitExceeded
	}
	s.incidents.Record(ctx, model.Incident{
		ClientIdentity: strPtr(client),
		TenantID:       int64Ptr(tenantID),
		Kind:           kind,
		Details: detailsJSON(map[string]interface{}{
			"attempts":          hit.Attempts,
			"retryAfterSeconds": retryAfter,
		}),
		OccurredAt: now,
	})

	return RateLimitDecision{
		RetryAfterSeconds: retryAfter,
		Message:           fmt.Sprintf("too many order attempts, please try again in %s", waitText(hit.RetryAfter)),
	}
}

func (s *rateLimitService) Status(ctx context.Context, clientIdentity string, tenantID int64) (RateLimitStatus, error) {
	client := strings.TrimSpace(clientIdentity)
	status := RateLimitStatus{Limit: RateLimitMaxAttempts}
	if client == "" {
		return status, nil
	}

	now := time.Now().UTC()

	state, err := s.windows.Peek(ctx, windowKey(client, tenantID), now)
	if err != nil {
		return status, fmt.Errorf("peek window: %w", err)
	}
	status.Attempts = state.Attempts
	status.Blocked = state.BlockedUntil != nil
	status.BlockedUntil = state.BlockedUntil

	// Registry blocks (sweeper escalations, manual operator blocks) expire
	// lazily: rows past blockedUntil read as unblocked.
	block, err := s.blocks.GetByKey(ctx, client)
	if err != nil {
		return status, fmt.Errorf("get client block: %w", err)
	}
	if block != nil && block.ActiveAt(now) {
		status.Blocked = true
		switch {
		case block.BlockedUntil == nil:
			// Permanent block.
			status.BlockedUntil = nil
		case status.BlockedUntil == nil || block.BlockedUntil.After(*status.BlockedUntil):
			status.BlockedUntil = block.BlockedUntil
		}
	}
	return status, nil
}

// windowKey combines client identity and tenant so one tenant's load cannot
// exhaust another tenant's quota.
func windowKey(clientIdentity string, tenantID int64) string {
	return clientIdentity + "|" + strconv.FormatInt(tenantID, 10)
}

func waitText(d time.Duration) string {
	if d >= time.Minute {
		minutes := int(d.Round(time.Minute) / time.Minute)
		if minutes <= 1 {
			return "about a minute"
		}
		return fmt.Sprintf("about %d minutes", minutes)
	}
	seconds := int(d.Round(time.Second) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return fmt.Sprintf("%d seconds", seconds)
}
