package converter

import (
	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/infra/postgres"
	"hotel-discounts/internal/pkg/pgconv"
)

func DiscountFromRow(row postgres.Discount) (*discount.Discount, error) {
	value, err := pgconv.DecimalFromNumeric(row.Value)
	if err != nil {
		return nil, err
	}

	return &discount.Discount{
		ID:                  row.ID,
		Name:                row.Name,
		Description:         row.Description,
		Type:                discount.Type(row.DiscountType),
		Value:               value,
		AppliesTo:           discount.AppliesTo(row.AppliesTo),
		Enabled:             row.Enabled,
		ValidFrom:           pgconv.DatePtrFromPgtype(row.ValidFrom),
		ValidTo:             pgconv.DatePtrFromPgtype(row.ValidTo),
		ApplicableRoomTypes: pgconv.UUIDsFromPgtype(row.ApplicableRoomTypes),
		PromoCode:           pgconv.StringPtrFromPgtype(row.PromoCode),
		MinimumNights:       int(row.MinimumNights),
		MaximumUses:         pgconv.IntPtrFromPgtype(row.MaximumUses),
		CurrentUses:         int(row.CurrentUses),
		Priority:            int(row.Priority),
		CanCombine:          row.CanCombine,
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func DiscountsFromRows(rows []postgres.Discount) ([]discount.Discount, error) {
	out := make([]discount.Discount, 0, len(rows))
	for _, row := range rows {
		d, err := DiscountFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

// DiscountToParams maps the writable columns; usage counters and timestamps are owned by SQL.
func DiscountToParams(d discount.Discount) postgres.CreateDiscountParams {
	return postgres.CreateDiscountParams{
		ID:                  d.ID,
		Name:                d.Name,
		Description:         d.Description,
		DiscountType:        d.Type.String(),
		Value:               pgconv.DecimalToNumeric(d.Value),
		AppliesTo:           d.AppliesTo.String(),
		Enabled:             d.Enabled,
		ValidFrom:           pgconv.DatePtrToPgtype(d.ValidFrom),
		ValidTo:             pgconv.DatePtrToPgtype(d.ValidTo),
		ApplicableRoomTypes: pgconv.UUIDsToPgtype(d.ApplicableRoomTypes),
		PromoCode:           pgconv.StringPtrToPgtype(d.PromoCode),
		MinimumNights:       int32(d.MinimumNights),
		MaximumUses:         pgconv.IntPtrToPgtype(d.MaximumUses),
		Priority:            int32(d.Priority),
		CanCombine:          d.CanCombine,
	}
}

func ApplicationToParams(app *discount.Application) postgres.CreateDiscountApplicationParams {
	return postgres.CreateDiscountApplicationParams{
		ID:             app.ID(),
		DiscountID:     app.DiscountID(),
		ReservationID:  pgconv.UUIDPtrToPgtype(app.ReservationID()),
		BillID:         pgconv.UUIDPtrToPgtype(app.BillID()),
		OriginalAmount: pgconv.DecimalToNumeric(app.OriginalAmount()),
		DiscountAmount: pgconv.DecimalToNumeric(app.DiscountAmount()),
		FinalAmount:    pgconv.DecimalToNumeric(app.FinalAmount()),
		AppliedAt:      pgconv.TimeToPgtype(app.AppliedAt()),
	}
}
