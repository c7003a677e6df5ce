package response

import (
	"hotel-discounts/internal/domain/discount"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID             string  `json:"id"`
	DiscountID     string  `json:"discount_id"`
	ReservationID  *string `json:"reservation_id"`
	BillID         *string `json:"bill_id"`
	OriginalAmount string  `json:"original_amount"`
	DiscountAmount string  `json:"discount_amount"`
	FinalAmount    string  `json:"final_amount"`
	AppliedAt      int64   `json:"applied_at"`
}

func FromApplication(a *discount.Application) *ApplicationResponse {
	return &ApplicationResponse{
		ID:             a.ID().String(),
		DiscountID:     a.DiscountID().String(),
		ReservationID:  idString(a.ReservationID()),
		BillID:         idString(a.BillID()),
		OriginalAmount: a.OriginalAmount().StringFixed(2),
		DiscountAmount: a.DiscountAmount().StringFixed(2),
		FinalAmount:    a.FinalAmount().StringFixed(2),
		AppliedAt:      a.AppliedAt().Unix(),
	}
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
