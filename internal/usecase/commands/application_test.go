//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/infra"
	"hotel-discounts/internal/pkg/clock"
	"hotel-discounts/internal/pkg/errs"
	"hotel-discounts/internal/usecase/commands"
	"hotel-discounts/internal/usecase/shared"
	"hotel-discounts/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func recordInput(discountID uuid.UUID) commands.RecordApplicationInput {
	return commands.RecordApplicationInput{
		DiscountID:     discountID,
		Target:         discount.ReservationTarget(uuid.New()),
		OriginalAmount: decimal.RequireFromString("250.00"),
		DiscountAmount: decimal.RequireFromString("25.00"),
		FinalAmount:    decimal.RequireFromString("225.00"),
	}
}

func TestApplicationCommands_Record(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.July, 1, 14, 0, 0, 0, time.UTC)

	t.Run("success: application stored and usage counted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewApplicationCommands(m.uow, m.cache, clock.NewFixedClock(now))

		d := builder.NewDiscountBuilder().WithMaxUses(10, 2).BuildPtr()
		gomock.InOrder(
			m.reads.EXPECT().DiscountByID(gomock.Any(), d.ID).Return(d, nil),
			m.discounts.EXPECT().IncrementUses(gomock.Any(), d.ID).Return(3, nil),
			m.applications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		app, err := uc.Record(ctx, recordInput(d.ID))

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, app.ID())
		assert.Equal(t, d.ID, app.DiscountID())
		assert.Equal(t, now, app.AppliedAt())
		assert.NotNil(t, app.ReservationID())
		assert.Nil(t, app.BillID())
	})

	testCases := []struct {
		name      string
		input     func(uuid.UUID) commands.RecordApplicationInput
		setupMock func(*txMocks, uuid.UUID)
		errIs     error
	}{
		{
			name: "error: both reservation and bill given",
			input: func(id uuid.UUID) commands.RecordApplicationInput {
				in := recordInput(id)
				billID := uuid.New()
				in.Target.BillID = &billID
				return in
			},
			setupMock: func(*txMocks, uuid.UUID) {},
			errIs:     discount.ErrInvalidApplication,
		},
		{
			name: "error: final amount does not add up",
			input: func(id uuid.UUID) commands.RecordApplicationInput {
				in := recordInput(id)
				in.FinalAmount = decimal.RequireFromString("230.00")
				return in
			},
			setupMock: func(*txMocks, uuid.UUID) {},
			errIs:     discount.ErrInvalidApplication,
		},
		{
			name:  "error: discount not found",
			input: recordInput,
			setupMock: func(m *txMocks, id uuid.UUID) {
				m.reads.EXPECT().DiscountByID(gomock.Any(), id).Return(nil, notFoundErr())
			},
			errIs: errs.ErrDiscountNotFound,
		},
		{
			name:  "error: usage limit reached",
			input: recordInput,
			setupMock: func(m *txMocks, id uuid.UUID) {
				d := builder.NewDiscountBuilder().WithID(id).WithMaxUses(1, 1).BuildPtr()
				m.reads.EXPECT().DiscountByID(gomock.Any(), id).Return(d, nil)
				m.discounts.EXPECT().IncrementUses(gomock.Any(), id).
					Return(0, infra.WrapRepoErr("exhausted", pgx.ErrNoRows, infra.KindConflict))
			},
			errIs: errs.ErrUsageLimitReached,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			uc := commands.NewApplicationCommands(m.uow, m.cache, clock.NewFixedClock(now))
			id := uuid.New()
			tc.setupMock(m, id)

			app, err := uc.Record(ctx, tc.input(id))

			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
			assert.Nil(t, app)
		})
	}
}

func TestApplicationCommands_Remove(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.July, 1, 14, 0, 0, 0, time.UTC)

	t.Run("success: usage released", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewApplicationCommands(m.uow, m.cache, clock.NewFixedClock(now))

		snap := &shared.ApplicationSnapshot{ID: uuid.New(), DiscountID: uuid.New(), AppliedAt: now}
		gomock.InOrder(
			m.reads.EXPECT().ApplicationByID(gomock.Any(), snap.ID).Return(snap, nil),
			m.applications.EXPECT().Delete(gomock.Any(), snap.ID).Return(nil),
			m.discounts.EXPECT().DecrementUses(gomock.Any(), snap.DiscountID).Return(nil),
		)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		err := uc.Remove(ctx, snap.ID)

		assert.NoError(t, err)
	})

	t.Run("error: application not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewApplicationCommands(m.uow, m.cache, clock.NewFixedClock(now))

		id := uuid.New()
		m.reads.EXPECT().ApplicationByID(gomock.Any(), id).Return(nil, notFoundErr())

		err := uc.Remove(ctx, id)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrApplicationNotFound))
	})
}
