//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"shopgate/backend/internal/model"
	"shopgate/backend/pkg/snowflake"
)

// IncidentFilter narrows incident listings. Zero values mean "no filter".
type IncidentFilter struct {
	Kind           model.IncidentKind
	ClientIdentity string
	DeviceIdentity string
	TenantID       *int64
	Since          *time.Time
	Limit          int
	Offset         int
}

// IncidentRepository is the append-only incident log store.
type IncidentRepository interface {
	Insert(ctx context.Context, incident model.Incident) (*model.Incident, error)
	List(ctx context.Context, filter IncidentFilter) ([]model.Incident, error)
	CountByClientSince(ctx context.Context, kinds []model.IncidentKind, since time.Time) (map[string]int, error)
	CountByDeviceSince(ctx context.Context, kinds []model.IncidentKind, since time.Time) (map[string]int, error)
	CountByKindSince(ctx context.Context, since time.Time) (map[model.IncidentKind]int, error)
}

type incidentRepository struct {
	db *sql.DB
}

// NewIncidentRepository creates a new incident log repository.
func NewIncidentRepository(db *sql.DB) IncidentRepository {
	return &incidentRepository{db: db}
}

func (r *incidentRepository) Insert(ctx context.Context, incident model.Incident) (*model.Incident, error) {
	incident.ID = snowflake.NextID()
	if incident.OccurredAt.IsZero() {
		incident.OccurredAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO incidents (id, client_identity, device_identity, tenant_id, kind, details, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, incident.ID, nullableString(incident.ClientIdentity), nullableString(incident.DeviceIdentity),
		nullableInt64(incident.TenantID), string(incident.Kind), nullableString(incident.Details),
		formatTime(incident.OccurredAt))
	if err != nil {
		return nil, err
	}

	return &incident, nil
}

func (r *incidentRepository) List(ctx context.Context, filter IncidentFilter) ([]model.Incident, error) {
	query := `
		SELECT id, client_identity, device_identity, tenant_id, kind, details, occurred_at
		FROM incidents
	`
	var conditions []string
	var args []interface{}

	if filter.Kind != "" {
		conditions = append(conditions, "kind = ?")
		args = append(args, string(filter.Kind))
	}
	if filter.ClientIdentity != "" {
		conditions = append(conditions, "client_identity = ?")
		args = append(args, filter.ClientIdentity)
	}
	if filter.DeviceIdentity != "" {
		conditions = append(conditions, "device_identity = ?")
		args = append(args, filter.DeviceIdentity)
	}
	if filter.TenantID != nil {
		conditions = append(conditions, "tenant_id = ?")
		args = append(args, *filter.TenantID)
	}
	if filter.Since != nil {
		conditions = append(conditions, "occurred_at >= ?")
		args = append(args, formatTime(*filter.Since))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY occurred_at DESC"
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " LIMIT ?"
	args = append(args, limit)
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incidents []model.Incident
	for rows.Next() {
		var (
			incident   model.Incident
			client     sql.NullString
			device     sql.NullString
			tenantID   sql.NullInt64
			details    sql.NullString
			occurredAt string
		)
		if err := rows.Scan(&incident.ID, &client, &device, &tenantID, &incident.Kind, &details, &occurredAt); err != nil {
			return nil, err
		}
		incident.ClientIdentity = stringFromNull(client)
		incident.DeviceIdentity = stringFromNull(device)
		incident.TenantID = int64FromNull(tenantID)
		incident.Details = stringFromNull(details)
		incident.OccurredAt, _ = parseTime(occurredAt)
		incidents = append(incidents, incident)
	}
	return incidents, rows.Err()
}

func (r *incidentRepository) CountByClientSince(ctx context.Context, kinds []model.IncidentKind, since time.Time) (map[string]int, error) {
	return r.countGrouped(ctx, "client_identity", kinds, since)
}

func (r *incidentRepository) CountByDeviceSince(ctx context.Context, kinds []model.IncidentKind, since time.Time) (map[string]int, error) {
	return r.countGrouped(ctx, "device_identity", kinds, since)
}

func (r *incidentRepository) countGrouped(ctx context.Context, column string, kinds []model.IncidentKind, since time.Time) (map[string]int, error) {
	if len(kinds) == 0 {
		return map[string]int{}, nil
	}

	placeholders := make([]string, 0, len(kinds))
	args := make([]interface{}, 0, len(kinds)+1)
	for _, kind := range kinds {
		placeholders = append(placeholders, "?")
		args = append(args, string(kind))
	}
	args = append(args, formatTime(since))

	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) FROM incidents
		WHERE %s IS NOT NULL AND %s != ''
		  AND kind IN (%s) AND occurred_at >= ?
		GROUP BY %s
	`, column, column, column, strings.Join(placeholders, ","), column)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		counts[key] = count
	}
	return counts, rows.Err()
}

func (r *incidentRepository) CountByKindSince(ctx context.Context, since time.Time) (map[model.IncidentKind]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT kind, COUNT(*) FROM incidents WHERE occurred_at >= ? GROUP BY kind
	`, formatTime(since))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.IncidentKind]int)
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, err
		}
		counts[model.IncidentKind(kind)] = count
	}
	return counts, rows.Err()
}
