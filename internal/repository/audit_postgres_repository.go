package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/backoffice/internal/domain"
)

type postgresAuditRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAuditRepository builds repository. The audit_log table comes
// from the migrations directory.
func NewPostgresAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &postgresAuditRepository{pool: pool}
}

func (r *postgresAuditRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	const query = `
        INSERT INTO audit_log (collection, entity_id, action, event_type, snapshot)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id::text, created_at`
	var snapshot any
	if len(entry.Snapshot) > 0 {
		snapshot = string(entry.Snapshot)
	}
	return r.pool.QueryRow(ctx, query,
		entry.Collection,
		entry.EntityID,
		string(entry.Action),
		entry.EventType,
		snapshot,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *postgresAuditRepository) List(ctx context.Context, filter AuditFilter) ([]domain.AuditEntry, error) {
	where, args := auditWhere(filter, func(n int) string { return fmt.Sprintf("$%d", n) })
	query := `
        SELECT id::text, collection, entity_id, action, event_type, COALESCE(snapshot::text, ''), created_at
        FROM audit_log` + where + ` ORDER BY created_at DESC, id DESC` + auditWindow(filter, "")
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.AuditEntry{}
	for rows.Next() {
		var (
			entry    domain.AuditEntry
			action   string
			snapshot string
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.Collection,
			&entry.EntityID,
			&action,
			&entry.EventType,
			&snapshot,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entry.Action = domain.AuditAction(action)
		if snapshot != "" {
			entry.Snapshot = []byte(snapshot)
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

// auditWhere renders the filter's WHERE clause; placeholder formats the
// n-th bind parameter for the target dialect.
func auditWhere(filter AuditFilter, placeholder func(int) string) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	if filter.Collection != "" {
		args = append(args, filter.Collection)
		clauses = append(clauses, "collection = "+placeholder(len(args)))
	}
	if filter.EntityID != "" {
		args = append(args, filter.EntityID)
		clauses = append(clauses, "entity_id = "+placeholder(len(args)))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// auditWindow renders LIMIT/OFFSET. SQLite rejects a bare OFFSET, so
// unbounded carries the dialect's "no limit" spelling when one is needed.
func auditWindow(filter AuditFilter, unbounded string) string {
	var b strings.Builder
	if filter.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", filter.Limit)
	} else if filter.Offset > 0 && unbounded != "" {
		b.WriteString(" LIMIT " + unbounded)
	}
	if filter.Offset > 0 {
		fmt.Fprintf(&b, " OFFSET %d", filter.Offset)
	}
	return b.String()
}
