package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/infra/postgres"
	"hotel-discounts/internal/infra/readstore"
	"hotel-discounts/internal/infra/repository"
	"hotel-discounts/internal/pkg/errs"
	"hotel-discounts/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds how often a transaction is replayed after a serialization failure or deadlock.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, BaseDelay: 100 * time.Millisecond}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *postgres.Queries
	policy RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *postgres.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		policy: DefaultRetryPolicy,
	}
}

// ReadCommitted is enough here: the usage counter is guarded by a conditional UPDATE,
// which takes the row lock itself.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Each attempt commits or rolls back before the next begins, so no deferred rollbacks pile up.
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, options, fn)
		if err == nil {
			return nil
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt >= u.policy.MaxRetries {
			slog.ErrorContext(ctx, "transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, u.policy.BaseDelay)
		slog.WarnContext(ctx, "retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
		slog.WarnContext(ctx, "rollback failed", "error", rollbackErr.Error())
	}
	return err
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx postgres.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	discountRepo    shared.DiscountRepository
	applicationRepo shared.ApplicationRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() postgres.DBTX {
	return t.dbtx
}

func (t *pgTx) Discounts() shared.DiscountRepository {
	if t.discountRepo == nil {
		t.discountRepo = repository.NewDiscountRepository(t.uow.q, t.dbtx)
	}
	return t.discountRepo
}

func (t *pgTx) Applications() shared.ApplicationRepository {
	if t.applicationRepo == nil {
		t.applicationRepo = repository.NewApplicationRepository(t.uow.q, t.dbtx)
	}
	return t.applicationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx postgres.DBTX

	// Lazy-initialized readstores
	discountStore    *readstore.DiscountReadStore
	applicationStore *readstore.ApplicationReadStore
}

func (r *commandReads) discounts() *readstore.DiscountReadStore {
	if r.discountStore == nil {
		r.discountStore = readstore.NewDiscountReadStore(r.uow.q, r.dbtx)
	}
	return r.discountStore
}

func (r *commandReads) DiscountByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	return r.discounts().FindByID(ctx, id)
}

func (r *commandReads) DiscountByPromoCode(ctx context.Context, code string) (*discount.Discount, error) {
	return r.discounts().FindByPromoCode(ctx, discount.NormalizePromoCode(code))
}

func (r *commandReads) ApplicationByID(ctx context.Context, id uuid.UUID) (*shared.ApplicationSnapshot, error) {
	if r.applicationStore == nil {
		r.applicationStore = readstore.NewApplicationReadStore(r.uow.q, r.dbtx)
	}
	return r.applicationStore.FindByID(ctx, id)
}
