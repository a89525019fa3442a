//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"encoding/json"

	"shopgate/backend/internal/model"
	"shopgate/backend/internal/repository"
	"shopgate/backend/pkg/logger"
)

// IncidentService is the write port to the incident log. Record is
// best-effort and never returns an error: gates call it unconditionally and
// a failing log store must not affect the admission decision.
type IncidentService interface {
	Record(ctx context.Context, incident model.Incident)
	List(ctx context.Context, filter repository.IncidentFilter) ([]model.Incident, error)
}

type incidentService struct {
	incidents repository.IncidentRepository
}

// NewIncidentService creates a new incident log service.
func NewIncidentService(incidents repository.IncidentRepository) IncidentService {
	return &incidentService{incidents: incidents}
}

func (s *incidentService) Record(ctx context.Context, incident model.Incident) {
	// Detached from request cancellation: a caller abandoning the request
	// mid-check must not lose the log write.
	if _, err := s.incidents.Insert(context.WithoutCancel(ctx), incident); err != nil {
		logger.Warn("incident log write failed", "kind", incident.Kind, "error", err)
	}
}

func (s *incidentService) List(ctx context.Context, filter repository.IncidentFilter) ([]model.Incident, error) {
	return s.incidents.List(ctx, filter)
}

// detailsJSON renders an incident details payload. Returns nil on marshal
// failure so callers can pass the result straight into model.Incident.
func detailsJSON(payload map[string]interface{}) *string {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	s := string(raw)
	return &s
}

func strPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func int64Ptr(value int64) *int64 {
	return &value
}
