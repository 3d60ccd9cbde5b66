package repository

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/backoffice/internal/config"
	"github.com/spec-kit/backoffice/internal/domain"
	"github.com/spec-kit/backoffice/internal/persistence"
)

func newSQLiteRepo(t *testing.T) AuditRepository {
	t.Helper()
	db, err := persistence.NewSQLite(context.Background(), config.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "audit.db"),
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(db.Close)

	repo, err := NewSQLiteAuditRepository(context.Background(), db.DB)
	require.NoError(t, err)
	return repo
}

func auditRepositories(t *testing.T) map[string]AuditRepository {
	return map[string]AuditRepository{
		"memory": NewMemoryAuditRepository(),
		"sqlite": newSQLiteRepo(t),
	}
}

func seedAudit(t *testing.T, repo AuditRepository) {
	t.Helper()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	entries := []domain.AuditEntry{
		{Collection: "payments", EntityID: "p-1", Action: domain.AuditActionCreated, EventType: "entity_created"},
		{Collection: "payments", EntityID: "p-1", Action: domain.AuditActionUpdated, EventType: "payment_refunded"},
		{Collection: "users", EntityID: "u-1", Action: domain.AuditActionDeleted, EventType: "entity_deleted"},
	}
	for i := range entries {
		entries[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(context.Background(), &entries[i]))
		assert.NotEmpty(t, entries[i].ID)
	}
}

func TestAuditRepositories(t *testing.T) {
	for name, repo := range auditRepositories(t) {
		t.Run(name, func(t *testing.T) {
			seedAudit(t, repo)
			ctx := context.Background()

			all, err := repo.List(ctx, AuditFilter{})
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, "users", all[0].Collection, "newest first")
			assert.Equal(t, domain.AuditActionCreated, all[2].Action)

			payments, err := repo.List(ctx, AuditFilter{Collection: "payments"})
			require.NoError(t, err)
			require.Len(t, payments, 2)
			assert.Equal(t, "payment_refunded", payments[0].EventType)

			one, err := repo.List(ctx, AuditFilter{Collection: "payments", EntityID: "p-1", Limit: 1, Offset: 1})
			require.NoError(t, err)
			require.Len(t, one, 1)
			assert.Equal(t, domain.AuditActionCreated, one[0].Action)

			tail, err := repo.List(ctx, AuditFilter{Offset: 2})
			require.NoError(t, err)
			assert.Len(t, tail, 1)

			none, err := repo.List(ctx, AuditFilter{EntityID: "missing"})
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}

func TestAuditSnapshotRoundTrip(t *testing.T) {
	for name, repo := range auditRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			snapshot := json.RawMessage(`{"id":"p-9","amount":50000}`)
			require.NoError(t, repo.Create(ctx, &domain.AuditEntry{
				Collection: "payments",
				EntityID:   "p-9",
				Action:     domain.AuditActionCreated,
				EventType:  "entity_created",
				Snapshot:   snapshot,
			}))

			got, err := repo.List(ctx, AuditFilter{EntityID: "p-9"})
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.JSONEq(t, string(snapshot), string(got[0].Snapshot))
			assert.False(t, got[0].CreatedAt.IsZero())
		})
	}
}

func TestMemoryAuditRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewMemoryAuditRepository()
	assert.ErrorIs(t, repo.Create(ctx, &domain.AuditEntry{}), context.Canceled)
	_, err := repo.List(ctx, AuditFilter{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAuditWhere(t *testing.T) {
	where, args := auditWhere(AuditFilter{Collection: "users", EntityID: "u-1"}, func(n int) string { return "$" + string(rune('0'+n)) })
	assert.Equal(t, " WHERE collection = $1 AND entity_id = $2", where)
	assert.Equal(t, []any{"users", "u-1"}, args)

	where, args = auditWhere(AuditFilter{}, func(int) string { return "?" })
	assert.Empty(t, where)
	assert.Empty(t, args)

	assert.Equal(t, " LIMIT 5 OFFSET 10", auditWindow(AuditFilter{Limit: 5, Offset: 10}, "-1"))
	assert.Equal(t, " LIMIT -1 OFFSET 3", auditWindow(AuditFilter{Offset: 3}, "-1"))
	assert.Equal(t, " OFFSET 3", auditWindow(AuditFilter{Offset: 3}, ""))
}
