package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const applicationColumns = `id, discount_id, reservation_id, bill_id,
	original_amount, discount_amount, final_amount, applied_at`

func scanApplication(row pgx.Row) (DiscountApplication, error) {
	var i DiscountApplication
	err := row.Scan(
		&i.ID,
		&i.DiscountID,
		&i.ReservationID,
		&i.BillID,
		&i.OriginalAmount,
		&i.DiscountAmount,
		&i.FinalAmount,
		&i.AppliedAt,
	)
	return i, err
}

const createDiscountApplication = `INSERT INTO discount_applications (
	id, discount_id, reservation_id, bill_id, original_amount, discount_amount, final_amount, applied_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8
)
RETURNING ` + applicationColumns

type CreateDiscountApplicationParams struct {
	ID             uuid.UUID
	DiscountID     uuid.UUID
	ReservationID  pgtype.UUID
	BillID         pgtype.UUID
	OriginalAmount pgtype.Numeric
	DiscountAmount pgtype.Numeric
	FinalAmount    pgtype.Numeric
	AppliedAt      pgtype.Timestamptz
}

func (q *Queries) CreateDiscountApplication(ctx context.Context, db DBTX, arg CreateDiscountApplicationParams) (DiscountApplication, error) {
	row := db.QueryRow(ctx, createDiscountApplication,
		arg.ID,
		arg.DiscountID,
		arg.ReservationID,
		arg.BillID,
		arg.OriginalAmount,
		arg.DiscountAmount,
		arg.FinalAmount,
		arg.AppliedAt,
	)
	return scanApplication(row)
}

const getDiscountApplicationByID = `SELECT ` + applicationColumns + ` FROM discount_applications WHERE id = $1`

func (q *Queries) GetDiscountApplicationByID(ctx context.Context, db DBTX, id uuid.UUID) (DiscountApplication, error) {
	return scanApplication(db.QueryRow(ctx, getDiscountApplicationByID, id))
}

const deleteDiscountApplication = `DELETE FROM discount_applications WHERE id = $1`

func (q *Queries) DeleteDiscountApplication(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteDiscountApplication, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
