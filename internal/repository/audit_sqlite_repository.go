package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/spec-kit/backoffice/internal/domain"
)

// sqliteTimeLayout keeps timestamps lexically sortable.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

const sqliteAuditSchema = `
CREATE TABLE IF NOT EXISTS audit_log (
    id          TEXT PRIMARY KEY,
    collection  TEXT NOT NULL,
    entity_id   TEXT NOT NULL,
    action      TEXT NOT NULL,
    event_type  TEXT NOT NULL,
    snapshot    TEXT,
    created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_audit_log_collection ON audit_log (collection, entity_id);
CREATE INDEX IF NOT EXISTS idx_audit_log_created_at ON audit_log (created_at);`

type sqliteAuditRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteAuditRepository builds repository and creates its table when missing.
func NewSQLiteAuditRepository(ctx context.Context, db *sql.DB) (AuditRepository, error) {
	if _, err := db.ExecContext(ctx, sqliteAuditSchema); err != nil {
		return nil, fmt.Errorf("create audit schema: %w", err)
	}
	return &sqliteAuditRepository{db: db, now: time.Now}, nil
}

func (r *sqliteAuditRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	stampEntry(entry, r.now)
	const query = `
        INSERT INTO audit_log (id, collection, entity_id, action, event_type, snapshot, created_at)
        VALUES (?,?,?,?,?,?,?)`
	var snapshot any
	if len(entry.Snapshot) > 0 {
		snapshot = string(entry.Snapshot)
	}
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Collection,
		entry.EntityID,
		string(entry.Action),
		entry.EventType,
		snapshot,
		entry.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	return err
}

func (r *sqliteAuditRepository) List(ctx context.Context, filter AuditFilter) ([]domain.AuditEntry, error) {
	where, args := auditWhere(filter, func(int) string { return "?" })
	query := `
        SELECT id, collection, entity_id, action, event_type, COALESCE(snapshot, ''), created_at
        FROM audit_log` + where + ` ORDER BY created_at DESC, rowid DESC` + auditWindow(filter, "-1")
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.AuditEntry{}
	for rows.Next() {
		var (
			entry     domain.AuditEntry
			action    string
			snapshot  string
			createdAt string
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.Collection,
			&entry.EntityID,
			&action,
			&entry.EventType,
			&snapshot,
			&createdAt,
		); err != nil {
			return nil, err
		}
		entry.Action = domain.AuditAction(action)
		if snapshot != "" {
			entry.Snapshot = []byte(snapshot)
		}
		if entry.CreatedAt, err = time.Parse(sqliteTimeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parse audit timestamp %q: %w", createdAt, err)
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
