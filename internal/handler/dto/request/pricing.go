package request

import (
	"time"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/domain/reservation"
	"hotel-discounts/internal/pkg/errs"
	"hotel-discounts/internal/usecase/queries"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	CheckInDate  string          `json:"check_in_date"`
	CheckOutDate string          `json:"check_out_date"`
	RoomTypeID   *uuid.UUID      `json:"room_type_id"`
	PromoCode    *string         `json:"promo_code"`
	AppliesTo    *string         `json:"applies_to"`
}

func (r QuoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.By(nonNegativeAmount)),
		validation.Field(&r.CheckInDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&r.CheckOutDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&r.AppliesTo, validation.In(
			discount.AppliesToRoomRates.String(),
			discount.AppliesToAddons.String(),
			discount.AppliesToTotalBill.String(),
		)),
	)
}

func (r QuoteRequest) ToDomain() (queries.QuoteInput, error) {
	if err := r.Validate(); err != nil {
		return queries.QuoteInput{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	checkIn, _ := time.Parse(DateLayout, r.CheckInDate)
	checkOut, _ := time.Parse(DateLayout, r.CheckOutDate)
	stay, err := reservation.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return queries.QuoteInput{}, err
	}

	in := queries.QuoteInput{
		Amount:     r.Amount,
		Stay:       stay,
		RoomTypeID: r.RoomTypeID,
		PromoCode:  r.PromoCode,
	}
	if r.AppliesTo != nil && *r.AppliesTo != "" {
		bucket := discount.AppliesTo(*r.AppliesTo)
		in.AppliesTo = &bucket
	}
	return in, nil
}

type ValidatePromoCodeRequest struct {
	Code string `json:"code" binding:"required,max=64"`
}

func nonNegativeAmount(value any) error {
	v, _ := value.(decimal.Decimal)
	if v.IsNegative() {
		return validation.NewError("validation_negative_amount", "must not be negative")
	}
	return nil
}
