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

func CreateTestProgram(t *testing.T, db DBLike, name string, supervisorID uuid.UUID) uuid.UUID {
	t.Helper()

	programID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO programs (id, name, supervisor_id) VALUES ($1, $2, $3)",
		programID, name, supervisorID)
	require.NoError(t, err)

	return programID
}

type TestResource struct {
	Name     string
	Type     string
	Capacity int
	Building string
	Floor    int
	Features []string
}

func CreateTestResource(t *testing.T, db DBLike, r TestResource) uuid.UUID {
	t.Helper()

	resourceID := uuid.New()
	ctx := context.Background()

	locationText := fmt.Sprintf("Building %s, Floor %d", r.Building, r.Floor)
	_, err := db.Exec(ctx, `
		INSERT INTO resources (id, name, resource_type, capacity, building, floor, location_text, features, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true)`,
		resourceID, r.Name, r.Type, r.Capacity, r.Building, r.Floor, locationText, r.Features)
	require.NoError(t, err)

	return resourceID
}

func CreateTestReservation(t *testing.T, db DBLike, resourceID, userID, programID uuid.UUID, start, end time.Time) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO reservations (id, resource_id, user_id, program_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'CONFIRMED')`,
		reservationID, resourceID, userID, programID, start, end)
	require.NoError(t, err)

	return reservationID
}

func CreateTestProfile(t *testing.T, db DBLike, userID, programID uuid.UUID, priority int) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO user_program_profiles (user_id, program_id, priority)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, program_id) DO UPDATE SET priority = EXCLUDED.priority`,
		userID, programID, priority)
	require.NoError(t, err)
}

// SeedReferenceData is a no-op today; the schema carries no global reference
// rows, every test creates its own program and resources.
func SeedReferenceData(pool *pgxpool.Pool) error {
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
