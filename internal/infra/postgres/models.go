package postgres

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Discount struct {
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
	CurrentUses         int32
	Priority            int32
	CanCombine          bool
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

type DiscountApplication struct {
	ID             uuid.UUID
	DiscountID     uuid.UUID
	ReservationID  pgtype.UUID
	BillID         pgtype.UUID
	OriginalAmount pgtype.Numeric
	DiscountAmount pgtype.Numeric
	FinalAmount    pgtype.Numeric
	AppliedAt      pgtype.Timestamptz
}
