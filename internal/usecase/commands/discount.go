package commands

import (
	"context"
	"time"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/infra"
	"hotel-discounts/internal/pkg/errs"
	"hotel-discounts/internal/pkg/patch"
	"hotel-discounts/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountInput struct {
	Name                string
	Description         string
	Type                discount.Type
	Value               decimal.Decimal
	AppliesTo           discount.AppliesTo
	Enabled             bool
	ValidFrom           *time.Time
	ValidTo             *time.Time
	ApplicableRoomTypes []uuid.UUID
	PromoCode           *string
	MinimumNights       int
	MaximumUses         *int
	Priority            int
	CanCombine          bool
}

// DiscountPatch carries the fields an update touches; nil keeps the stored value.
type DiscountPatch struct {
	Name                *string
	Description         *string
	Type                *discount.Type
	Value               *decimal.Decimal
	AppliesTo           *discount.AppliesTo
	Enabled             *bool
	ValidFrom           *time.Time
	ValidTo             *time.Time
	ApplicableRoomTypes *[]uuid.UUID
	PromoCode           *string
	MinimumNights       *int
	MaximumUses         *int
	Priority            *int
	CanCombine          *bool
}

func (p DiscountPatch) apply(existing discount.Discount) discount.Discount {
	updated := existing
	updated.Name = patch.Coalesce(p.Name, existing.Name)
	updated.Description = patch.Coalesce(p.Description, existing.Description)
	updated.Type = patch.Coalesce(p.Type, existing.Type)
	updated.Value = patch.Coalesce(p.Value, existing.Value)
	updated.AppliesTo = patch.Coalesce(p.AppliesTo, existing.AppliesTo)
	updated.Enabled = patch.Coalesce(p.Enabled, existing.Enabled)
	updated.ValidFrom = patch.CoalescePtr(p.ValidFrom, existing.ValidFrom)
	updated.ValidTo = patch.CoalescePtr(p.ValidTo, existing.ValidTo)
	updated.ApplicableRoomTypes = patch.Coalesce(p.ApplicableRoomTypes, existing.ApplicableRoomTypes)
	updated.PromoCode = normalizePromoCode(patch.CoalescePtr(p.PromoCode, existing.PromoCode))
	updated.MinimumNights = patch.Coalesce(p.MinimumNights, existing.MinimumNights)
	updated.MaximumUses = patch.CoalescePtr(p.MaximumUses, existing.MaximumUses)
	updated.Priority = patch.Coalesce(p.Priority, existing.Priority)
	updated.CanCombine = patch.Coalesce(p.CanCombine, existing.CanCombine)
	return updated
}

type DiscountCommands interface {
	Create(ctx context.Context, in DiscountInput) (*discount.Discount, error)
	Update(ctx context.Context, id uuid.UUID, p DiscountPatch) (*discount.Discount, error)
	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type discountCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.DiscountSnapshotCache
}

func NewDiscountCommands(uow shared.UnitOfWork, cache shared.DiscountSnapshotCache) DiscountCommands {
	return &discountCommandsImpl{uow: uow, cache: cache}
}

func (uc *discountCommandsImpl) Create(ctx context.Context, in DiscountInput) (*discount.Discount, error) {
	d := discount.Discount{
		ID:                  uuid.New(),
		Name:                in.Name,
		Description:         in.Description,
		Type:                in.Type,
		Value:               in.Value,
		AppliesTo:           in.AppliesTo,
		Enabled:             in.Enabled,
		ValidFrom:           in.ValidFrom,
		ValidTo:             in.ValidTo,
		ApplicableRoomTypes: in.ApplicableRoomTypes,
		PromoCode:           normalizePromoCode(in.PromoCode),
		MinimumNights:       in.MinimumNights,
		MaximumUses:         in.MaximumUses,
		Priority:            in.Priority,
		CanCombine:          in.CanCombine,
	}
	if d.ApplicableRoomTypes == nil {
		d.ApplicableRoomTypes = []uuid.UUID{}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var created *discount.Discount
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := ensurePromoCodeFree(ctx, tx, d); derr != nil {
			return derr
		}

		var derr error
		created, derr = tx.Discounts().Create(ctx, d)
		return derr
	})
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrDiscountNotFound)
	}

	invalidateSnapshot(ctx, uc.cache)
	return created, nil
}

func (uc *discountCommandsImpl) Update(ctx context.Context, id uuid.UUID, p DiscountPatch) (*discount.Discount, error) {
	var updated *discount.Discount
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Reads().DiscountByID(ctx, id)
		if derr != nil {
			return derr
		}

		next := p.apply(*existing)
		if derr = next.Validate(); derr != nil {
			return derr
		}
		if derr = ensurePromoCodeFree(ctx, tx, next); derr != nil {
			return derr
		}

		updated, derr = tx.Discounts().Update(ctx, next)
		return derr
	})
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrDiscountNotFound)
	}

	invalidateSnapshot(ctx, uc.cache)
	return updated, nil
}

func (uc *discountCommandsImpl) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Discounts().SetEnabled(ctx, id, enabled)
	})
	if err != nil {
		return translateRepoErr(err, errs.ErrDiscountNotFound)
	}

	invalidateSnapshot(ctx, uc.cache)
	return nil
}

func (uc *discountCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Discounts().Delete(ctx, id)
	})
	if err != nil {
		return translateRepoErr(err, errs.ErrDiscountNotFound)
	}

	invalidateSnapshot(ctx, uc.cache)
	return nil
}

// ensurePromoCodeFree reports a taken code before the insert trips the unique index.
func ensurePromoCodeFree(ctx context.Context, tx shared.Tx, d discount.Discount) error {
	if d.PromoCode == nil {
		return nil
	}

	owner, err := tx.Reads().DiscountByPromoCode(ctx, *d.PromoCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	if owner.ID != d.ID {
		return errs.ErrDuplicatePromoCode
	}
	return nil
}

func normalizePromoCode(code *string) *string {
	if code == nil {
		return nil
	}
	normalized := discount.NormalizePromoCode(*code)
	if normalized == "" {
		return nil
	}
	return &normalized
}
