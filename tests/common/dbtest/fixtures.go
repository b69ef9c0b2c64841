//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"shutterbook/internal/pkg/password"
)

var testPasswordHash = sync.OnceValues(func() (string, error) {
	return password.HashPassword("password123")
})

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	passwordHash, err := testPasswordHash()
	require.NoError(t, err)
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestSlot(t *testing.T, db DBLike, photographerID uuid.UUID, weekday, bucket string, priceSatang int64) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	err := db.QueryRow(ctx, `INSERT INTO availability_slots (id, photographer_id, weekday, time_bucket, price_satang)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (photographer_id, weekday, time_bucket, price_satang) DO UPDATE SET price_satang = EXCLUDED.price_satang
		RETURNING id`,
		slotID, photographerID, weekday, bucket, priceSatang).Scan(&slotID)
	require.NoError(t, err)

	return slotID
}

// no shared reference tables exist yet; kept so ResetDB has a single reseed point
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
