package discount

import (
	"regexp"
	"slices"
	"time"

	"hotel-discounts/internal/pkg/errs"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxNameLength = 255

var ErrInvalidDiscount = errs.New("invalid discount")

var promoCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

var hundred = decimal.NewFromInt(100)

// Discount is a read-only snapshot of a stored discount record.
type Discount struct {
	ID                  uuid.UUID
	Name                string
	Description         string
	Type                Type
	Value               decimal.Decimal
	AppliesTo           AppliesTo
	Enabled             bool
	ValidFrom           *time.Time
	ValidTo             *time.Time
	ApplicableRoomTypes []uuid.UUID
	PromoCode           *string
	MinimumNights       int
	MaximumUses         *int
	CurrentUses         int
	Priority            int
	CanCombine          bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate checks the record as an administrator would submit it.
// Errors are validation.Errors marked with ErrInvalidDiscount.
func (d Discount) Validate() error {
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&d.Type, validation.Required, validation.By(validType)),
		validation.Field(&d.AppliesTo, validation.Required, validation.By(validAppliesTo)),
		validation.Field(&d.Value,
			validation.By(nonNegative),
			validation.When(d.Type == TypePercentage, validation.By(atMostHundred)),
		),
		validation.Field(&d.PromoCode,
			validation.When(d.Type == TypePromoCode, validation.Required),
			validation.Match(promoCodeRegex).Error("must be 3-32 characters of A-Z, 0-9, '_' or '-'"),
		),
		validation.Field(&d.MinimumNights, validation.Min(0)),
		validation.Field(&d.MaximumUses, validation.By(positiveLimit)),
		validation.Field(&d.CurrentUses, validation.Min(0)),
		validation.Field(&d.ValidTo, validation.By(notBefore(d.ValidFrom))),
	)
	if err != nil {
		return errs.Mark(err, ErrInvalidDiscount)
	}
	return nil
}

func (d Discount) HasRoomType(id uuid.UUID) bool {
	return slices.Contains(d.ApplicableRoomTypes, id)
}

func (d Discount) treatsValueAsPercentage() bool {
	switch d.Type {
	case TypePercentage:
		return true
	case TypeFixedAmount:
		return false
	default:
		return d.Value.LessThanOrEqual(hundred)
	}
}

func validType(value any) error {
	t, _ := value.(Type)
	if !t.IsValid() {
		return validation.NewError("validation_discount_type", "must be a supported discount type")
	}
	return nil
}

func validAppliesTo(value any) error {
	a, _ := value.(AppliesTo)
	if !a.IsValid() {
		return validation.NewError("validation_applies_to", "must be room_rates, addons or total_bill")
	}
	return nil
}

func nonNegative(value any) error {
	v, _ := value.(decimal.Decimal)
	if v.IsNegative() {
		return validation.NewError("validation_negative", "must not be negative")
	}
	return nil
}

func atMostHundred(value any) error {
	v, _ := value.(decimal.Decimal)
	if v.GreaterThan(hundred) {
		return validation.NewError("validation_percentage", "must be no greater than 100")
	}
	return nil
}

func positiveLimit(value any) error {
	limit, _ := value.(*int)
	if limit != nil && *limit < 1 {
		return validation.NewError("validation_maximum_uses", "must be at least 1")
	}
	return nil
}

func notBefore(from *time.Time) validation.RuleFunc {
	return func(value any) error {
		to, _ := value.(*time.Time)
		if from == nil || to == nil {
			return nil
		}
		if dateOf(*to).Before(dateOf(*from)) {
			return validation.NewError("validation_date_range", "must not be before valid_from")
		}
		return nil
	}
}
