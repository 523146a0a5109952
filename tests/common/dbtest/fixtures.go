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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool or a transaction, so fixtures can seed inside
// a test transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateCourt inserts an active court open daily from openTime to closeTime.
func CreateCourt(t *testing.T, db DBLike, name, openTime, closeTime string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	var courtID uuid.UUID
	err := db.QueryRow(ctx, "INSERT INTO courts (name) VALUES ($1) RETURNING id", name).Scan(&courtID)
	require.NoError(t, err)

	for day := range 7 {
		_, err := db.Exec(ctx, "INSERT INTO operating_hours (court_id, day_of_week, open_time, close_time) VALUES ($1, $2, $3, $4)",
			courtID, day, openTime, closeTime)
		require.NoError(t, err)
	}

	return courtID
}

// CreatePricingRule prices start..end on every weekday.
func CreatePricingRule(t *testing.T, db DBLike, courtID uuid.UUID, start, end string, priceMinor int64, priority int) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO pricing_rules (court_id, name, days_of_week, start_time, end_time, price_minor, priority)
		VALUES ($1, $2, '{0,1,2,3,4,5,6}', $3, $4, $5, $6)`,
		courtID, start+"-"+end, start, end, priceMinor, priority)
	require.NoError(t, err)
}

func CreateClosedDate(t *testing.T, db DBLike, date, reason string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "INSERT INTO special_closed_dates (date, reason) VALUES ($1::date, $2)", date, reason)
	require.NoError(t, err)
}

func CountActiveItems(t *testing.T, db DBLike, courtID uuid.UUID, date string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM booking_items WHERE court_id = $1 AND date = $2::date AND released_at IS NULL",
		courtID, date).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO staff (name) VALUES ('Front Desk');
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
		    AND tablename NOT IN ('goose_db_version')`)
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
