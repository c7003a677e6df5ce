package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const discountColumns = `id, name, description, discount_type, value, applies_to, enabled,
	valid_from, valid_to, applicable_room_types, promo_code, minimum_nights, maximum_uses,
	current_uses, priority, can_combine, created_at, updated_at`

func scanDiscount(row pgx.Row) (Discount, error) {
	var i Discount
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.DiscountType,
		&i.Value,
		&i.AppliesTo,
		&i.Enabled,
		&i.ValidFrom,
		&i.ValidTo,
		&i.ApplicableRoomTypes,
		&i.PromoCode,
		&i.MinimumNights,
		&i.MaximumUses,
		&i.CurrentUses,
		&i.Priority,
		&i.CanCombine,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getDiscountByID = `SELECT ` + discountColumns + ` FROM discounts WHERE id = $1`

func (q *Queries) GetDiscountByID(ctx context.Context, db DBTX, id uuid.UUID) (Discount, error) {
	return scanDiscount(db.QueryRow(ctx, getDiscountByID, id))
}

const getDiscountByPromoCode = `SELECT ` + discountColumns + ` FROM discounts WHERE promo_code = $1`

func (q *Queries) GetDiscountByPromoCode(ctx context.Context, db DBTX, code string) (Discount, error) {
	return scanDiscount(db.QueryRow(ctx, getDiscountByPromoCode, code))
}

const listDiscounts = `SELECT ` + discountColumns + ` FROM discounts
WHERE ($1::text IS NULL OR discount_type = $1::text)
  AND ($2::boolean IS NULL OR enabled = $2::boolean)
ORDER BY priority DESC, name ASC, id ASC`

type ListDiscountsParams struct {
	DiscountType pgtype.Text
	Enabled      pgtype.Bool
}

func (q *Queries) ListDiscounts(ctx context.Context, db DBTX, arg ListDiscountsParams) ([]Discount, error) {
	rows, err := db.Query(ctx, listDiscounts, arg.DiscountType, arg.Enabled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Discount{}
	for rows.Next() {
		i, err := scanDiscount(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createDiscount = `INSERT INTO discounts (
	id, name, description, discount_type, value, applies_to, enabled,
	valid_from, valid_to, applicable_room_types, promo_code, minimum_nights, maximum_uses,
	priority, can_combine
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
)
RETURNING ` + discountColumns

type CreateDiscountParams struct {
	ID                  uuid.UUID
	Name                string
	Description         string
	DiscountType        string
	Value               pgtype.Numeric
	AppliesTo           string
	Enabled             bool
	ValidFrom           pgtype.Date
	ValidTo             pgtype.Date
	ApplicableRoomTypes []pgtype.UUID
	PromoCode           pgtype.Text
	MinimumNights       int32
	MaximumUses         pgtype.Int4
	Priority            int32
	CanCombine          bool
}

func (q *Queries) CreateDiscount(ctx context.Context, db DBTX, arg CreateDiscountParams) (Discount, error) {
	row := db.QueryRow(ctx, createDiscount,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.DiscountType,
		arg.Value,
		arg.AppliesTo,
		arg.Enabled,
		arg.ValidFrom,
		arg.ValidTo,
		arg.ApplicableRoomTypes,
		arg.PromoCode,
		arg.MinimumNights,
		arg.MaximumUses,
		arg.Priority,
		arg.CanCombine,
	)
	return scanDiscount(row)
}

const updateDiscount = `UPDATE discounts SET
	name = $2,
	description = $3,
	discount_type = $4,
	value = $5,
	applies_to = $6,
	enabled = $7,
	valid_from = $8,
	valid_to = $9,
	applicable_room_types = $10,
	promo_code = $11,
	minimum_nights = $12,
	maximum_uses = $13,
	priority = $14,
	can_combine = $15,
	updated_at = now()
WHERE id = $1
RETURNING ` + discountColumns

type UpdateDiscountParams = CreateDiscountParams

func (q *Queries) UpdateDiscount(ctx context.Context, db DBTX, arg UpdateDiscountParams) (Discount, error) {
	row := db.QueryRow(ctx, updateDiscount,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.DiscountType,
		arg.Value,
		arg.AppliesTo,
		arg.Enabled,
		arg.ValidFrom,
		arg.ValidTo,
		arg.ApplicableRoomTypes,
		arg.PromoCode,
		arg.MinimumNights,
		arg.MaximumUses,
		arg.Priority,
		arg.CanCombine,
	)
	return scanDiscount(row)
}

const setDiscountEnabled = `UPDATE discounts SET enabled = $2, updated_at = now() WHERE id = $1`

func (q *Queries) SetDiscountEnabled(ctx context.Context, db DBTX, id uuid.UUID, enabled bool) (int64, error) {
	result, err := db.Exec(ctx, setDiscountEnabled, id, enabled)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteDiscount = `DELETE FROM discounts WHERE id = $1`

func (q *Queries) DeleteDiscount(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteDiscount, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// The usage guard lives in the WHERE clause so concurrent increments cannot pass maximum_uses.
const incrementDiscountUses = `UPDATE discounts
SET current_uses = current_uses + 1, updated_at = now()
WHERE id = $1
  AND enabled
  AND (maximum_uses IS NULL OR current_uses < maximum_uses)
RETURNING current_uses`

func (q *Queries) IncrementDiscountUses(ctx context.Context, db DBTX, id uuid.UUID) (int32, error) {
	var currentUses int32
	err := db.QueryRow(ctx, incrementDiscountUses, id).Scan(&currentUses)
	return currentUses, err
}

const decrementDiscountUses = `UPDATE discounts
SET current_uses = GREATEST(current_uses - 1, 0), updated_at = now()
WHERE id = $1`

func (q *Queries) DecrementDiscountUses(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, decrementDiscountUses, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
