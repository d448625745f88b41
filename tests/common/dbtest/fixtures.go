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
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, eligibility, is_active) VALUES ($1, $2, $3, $4, 'approved', true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateSuspendedUser inserts a requester who may log in but never book.
func CreateSuspendedUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, eligibility, is_active) VALUES ($1, $2, $3, 'member', 'suspended', true)",
		userID, email, testPasswordHash)
	require.NoError(t, err)

	return userID
}

func CreateTestEquipmentType(t *testing.T, db DBLike, name string, exclusive bool) uuid.UUID {
	t.Helper()

	typeID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO equipment_types (id, name, exclusive) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING",
		typeID, name, exclusive)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM equipment_types WHERE name = $1", name).Scan(&typeID)
	}

	return typeID
}

func CreateTestEquipment(t *testing.T, db DBLike, typeID uuid.UUID, name, status string) uuid.UUID {
	t.Helper()

	equipmentID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO equipment (id, type_id, name, status, is_active) VALUES ($1, $2, $3, $4, true)",
		equipmentID, typeID, name, status)
	require.NoError(t, err)

	return equipmentID
}

// CreateTestBooking inserts an occupying booking directly, bypassing the
// application layer. The exclusion constraint still applies.
func CreateTestBooking(t *testing.T, db DBLike, equipmentID, requesterID uuid.UUID, startAt, endAt time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO bookings (id, equipment_id, requester_id, start_at, end_at, status) VALUES ($1, $2, $3, $4, $5, $6)",
		bookingID, equipmentID, requesterID, startAt, endAt, status)
	require.NoError(t, err)

	return bookingID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO equipment_types (id, name, exclusive) VALUES
		    (gen_random_uuid(), 'Camera', false),
		    (gen_random_uuid(), 'Studio', true)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

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
