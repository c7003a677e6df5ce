//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"io/fs"
	"slices"
	"testing"
	"time"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/infra/converter"
	"hotel-discounts/internal/infra/postgres"
	"hotel-discounts/migrations"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// inserts d as-is, bypassing the usecase layer
func CreateTestDiscount(t *testing.T, db postgres.DBTX, d discount.Discount) uuid.UUID {
	t.Helper()

	row, err := postgres.New().CreateDiscount(context.Background(), db, converter.DiscountToParams(d))
	require.NoError(t, err)
	return row.ID
}

func SetCurrentUses(t *testing.T, db postgres.DBTX, id uuid.UUID, uses int) {
	t.Helper()

	tag, err := db.Exec(context.Background(), "UPDATE discounts SET current_uses = $2 WHERE id = $1", id, uses)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

func CurrentUses(t *testing.T, db postgres.DBTX, id uuid.UUID) int {
	t.Helper()

	var uses int
	err := db.QueryRow(context.Background(), "SELECT current_uses FROM discounts WHERE id = $1", id).Scan(&uses)
	require.NoError(t, err)
	return uses
}

func CountApplications(t *testing.T, db postgres.DBTX, discountID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM discount_applications WHERE discount_id = $1", discountID).Scan(&n)
	require.NoError(t, err)
	return n
}

// applies every embedded migration in file name order
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	files, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return err
	}
	slices.Sort(files)

	for _, file := range files {
		sql, err := fs.ReadFile(migrations.FS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
	}
	return nil
}

// both tables in one statement so the foreign key never blocks the truncate
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE discount_applications, discounts")
	return err
}
