package reservation

import (
	"time"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidStayPeriod = errs.New("check-out date must be after check-in date")

const hoursPerDay = 24

// StayPeriod is a check-in/check-out pair reduced to calendar dates.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in, out := calendarDate(checkIn), calendarDate(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func (s StayPeriod) CheckIn() time.Time  { return s.checkIn }
func (s StayPeriod) CheckOut() time.Time { return s.checkOut }

// Nights counts whole calendar days between check-in and check-out.
func (s StayPeriod) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours()) / hoursPerDay
}

func (s StayPeriod) BookingContext(roomTypeID *uuid.UUID, promoCode *string) discount.BookingContext {
	return discount.BookingContext{
		CheckIn:    s.checkIn,
		CheckOut:   s.checkOut,
		RoomTypeID: roomTypeID,
		Nights:     s.Nights(),
		PromoCode:  promoCode,
	}
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
