package request

import (
	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordApplicationRequest names exactly one of reservation_id or bill_id.
type RecordApplicationRequest struct {
	DiscountID     uuid.UUID       `json:"discount_id" binding:"required"`
	ReservationID  *uuid.UUID      `json:"reservation_id"`
	BillID         *uuid.UUID      `json:"bill_id"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
}

func (r *RecordApplicationRequest) ToDomain() commands.RecordApplicationInput {
	return commands.RecordApplicationInput{
		DiscountID: r.DiscountID,
		Target: discount.Target{
			ReservationID: r.ReservationID,
			BillID:        r.BillID,
		},
		OriginalAmount: r.OriginalAmount,
		DiscountAmount: r.DiscountAmount,
		FinalAmount:    r.FinalAmount,
	}
}
