package response

import (
	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/usecase/queries"
)

type AppliedDiscountResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DiscountType string `json:"discount_type"`
	Category     string `json:"category"`
	Value        string `json:"value"`
	Label        string `json:"label"`
	Amount       string `json:"amount"`
	Priority     int    `json:"priority"`
}

type QuoteResponse struct {
	OriginalAmount   string                     `json:"original_amount"`
	TotalDiscount    string                     `json:"total_discount"`
	FinalAmount      string                     `json:"final_amount"`
	Nights           int                        `json:"nights"`
	AppliedDiscounts []*AppliedDiscountResponse `json:"applied_discounts"`
}

func FromQuote(q *queries.Quote) *QuoteResponse {
	applied := make([]*AppliedDiscountResponse, len(q.Lines))
	for i, line := range q.Lines {
		applied[i] = &AppliedDiscountResponse{
			ID:           line.ID.String(),
			Name:         line.Name,
			DiscountType: line.Type.String(),
			Category:     string(line.Category),
			Value:        line.Value.StringFixed(2),
			Label:        line.Label,
			Amount:       line.Amount.StringFixed(2),
			Priority:     line.Priority,
		}
	}

	return &QuoteResponse{
		OriginalAmount:   q.OriginalAmount.StringFixed(2),
		TotalDiscount:    q.TotalDiscount.StringFixed(2),
		FinalAmount:      q.FinalAmount.StringFixed(2),
		Nights:           q.Nights,
		AppliedDiscounts: applied,
	}
}

type PromoCodeValidationResponse struct {
	Valid    bool              `json:"valid"`
	Reason   string            `json:"reason,omitempty"`
	Discount *DiscountResponse `json:"discount,omitempty"`
}

func FromPromoValidation(v discount.PromoValidation, currencySymbol string) *PromoCodeValidationResponse {
	res := &PromoCodeValidationResponse{
		Valid:  v.Valid,
		Reason: v.Reason,
	}
	if v.Discount != nil {
		res.Discount = FromDiscount(v.Discount, currencySymbol)
	}
	return res
}
