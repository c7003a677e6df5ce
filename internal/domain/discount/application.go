package discount

import (
	"time"

	"hotel-discounts/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidApplication     = errs.New("invalid discount application")
	ErrApplicationTarget      = errs.Mark(errs.New("exactly one of reservation or bill must be set"), ErrInvalidApplication)
	ErrApplicationAmounts     = errs.Mark(errs.New("amounts must be non-negative and discount cannot exceed original"), ErrInvalidApplication)
	ErrApplicationFinalAmount = errs.Mark(errs.New("final amount must equal original minus discount"), ErrInvalidApplication)
)

// Target is the reservation or the bill a discount was applied to.
type Target struct {
	ReservationID *uuid.UUID
	BillID        *uuid.UUID
}

func ReservationTarget(id uuid.UUID) Target {
	return Target{ReservationID: &id}
}

func BillTarget(id uuid.UUID) Target {
	return Target{BillID: &id}
}

func (t Target) valid() bool {
	return (t.ReservationID == nil) != (t.BillID == nil)
}

// Application records a discount actually used on a reservation or bill.
type Application struct {
	id             uuid.UUID
	discountID     uuid.UUID
	target         Target
	originalAmount decimal.Decimal
	discountAmount decimal.Decimal
	finalAmount    decimal.Decimal
	appliedAt      time.Time
}

func NewApplication(
	id, discountID uuid.UUID,
	target Target,
	originalAmount, discountAmount, finalAmount decimal.Decimal,
	appliedAt time.Time,
) (*Application, error) {
	if !target.valid() {
		return nil, ErrApplicationTarget
	}
	if originalAmount.IsNegative() || discountAmount.IsNegative() || finalAmount.IsNegative() ||
		discountAmount.GreaterThan(originalAmount) {
		return nil, ErrApplicationAmounts
	}
	if !roundCents(originalAmount.Sub(discountAmount)).Equal(roundCents(finalAmount)) {
		return nil, ErrApplicationFinalAmount
	}

	return &Application{
		id:             id,
		discountID:     discountID,
		target:         target,
		originalAmount: originalAmount,
		discountAmount: discountAmount,
		finalAmount:    finalAmount,
		appliedAt:      appliedAt,
	}, nil
}

func (a *Application) ID() uuid.UUID                   { return a.id }
func (a *Application) DiscountID() uuid.UUID           { return a.discountID }
func (a *Application) Target() Target                  { return a.target }
func (a *Application) ReservationID() *uuid.UUID       { return a.target.ReservationID }
func (a *Application) BillID() *uuid.UUID              { return a.target.BillID }
func (a *Application) OriginalAmount() decimal.Decimal { return a.originalAmount }
func (a *Application) DiscountAmount() decimal.Decimal { return a.discountAmount }
func (a *Application) FinalAmount() decimal.Decimal    { return a.finalAmount }
func (a *Application) AppliedAt() time.Time            { return a.appliedAt }
