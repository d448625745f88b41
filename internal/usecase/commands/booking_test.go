//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"equiplend/internal/domain/booking"
	"equiplend/internal/pkg/clock"
	"equiplend/internal/pkg/config"
	"equiplend/internal/pkg/errs"
	"equiplend/internal/usecase/commands"
	"equiplend/internal/usecase/shared"
	"equiplend/tests/common/builder"
	sharedmock "equiplend/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingCommandsFixture struct {
	uow   *sharedmock.MockUnitOfWork
	reads *sharedmock.MockCommandReads
	cmds  commands.BookingCommands
}

func newBookingCommandsFixture(t *testing.T, cfg config.BookingConfig) *bookingCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	reads := sharedmock.NewMockCommandReads(ctrl)
	return &bookingCommandsFixture{
		uow:   uow,
		reads: reads,
		cmds:  commands.NewBookingCommands(uow, cfg, clock.NewFixedClock(builder.BaseTime)),
	}
}

func validInput(equip *shared.EquipmentSnapshot, requester *shared.UserSnapshot) commands.ValidateBookingInput {
	return commands.ValidateBookingInput{
		EquipmentID: equip.ID,
		RequesterID: requester.ID,
		Window:      booking.ReconstructWindow(builder.BaseTime.Add(24*time.Hour), builder.BaseTime.Add(26*time.Hour)),
	}
}

func TestBookingCommands_Validate(t *testing.T) {
	t.Run("資格チェックが最初に走り在庫照会は行われない", func(t *testing.T) {
		f := newBookingCommandsFixture(t, config.BookingConfig{})
		equip := builder.NewEquipmentSnapshotBuilder().Build()
		requester := builder.NewUserSnapshotBuilder().WithEligibility("suspended").Build()

		// UserByID 以外の期待を一切設定しない。照会されればテストは落ちる。
		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().UserByID(gomock.Any(), requester.ID).Return(requester, nil)

		d, err := f.cmds.Validate(context.Background(), validInput(equip, requester))
		require.NoError(t, err)
		assert.False(t, d.Accepted)
		assert.Equal(t, booking.ReasonNotEligible, d.Reason)
	})

	t.Run("存在しない申請者はnot_eligible", func(t *testing.T) {
		f := newBookingCommandsFixture(t, config.BookingConfig{})
		equip := builder.NewEquipmentSnapshotBuilder().Build()
		requester := builder.NewUserSnapshotBuilder().Build()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().UserByID(gomock.Any(), requester.ID).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrUserNotFound))

		d, err := f.cmds.Validate(context.Background(), validInput(equip, requester))
		require.NoError(t, err)
		assert.Equal(t, booking.ReasonNotEligible, d.Reason)
	})

	t.Run("開始が終了以降ならinvalid_window", func(t *testing.T) {
		f := newBookingCommandsFixture(t, config.BookingConfig{})
		equip := builder.NewEquipmentSnapshotBuilder().Build()
		requester := builder.NewUserSnapshotBuilder().Build()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().UserByID(gomock.Any(), requester.ID).Return(requester, nil)

		in := validInput(equip, requester)
		in.Window = booking.ReconstructWindow(builder.BaseTime.Add(2*time.Hour), builder.BaseTime)

		d, err := f.cmds.Validate(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, booking.ReasonInvalidWindow, d.Reason)
	})

	t.Run("最大貸出日数の超過はpolicy_violation", func(t *testing.T) {
		f := newBookingCommandsFixture(t, config.BookingConfig{MaxDurationDays: 7})
		equip := builder.NewEquipmentSnapshotBuilder().Build()
		requester := builder.NewUserSnapshotBuilder().Build()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().UserByID(gomock.Any(), requester.ID).Return(requester, nil)

		in := validInput(equip, requester)
		in.Window = booking.ReconstructWindow(builder.BaseTime, builder.BaseTime.Add(8*24*time.Hour))

		d, err := f.cmds.Validate(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, booking.ReasonPolicyViolation, d.Reason)
		require.NotNil(t, d.Breach)
		assert.Equal(t, "max_duration_days", d.Breach.Threshold)
	})

	t.Run("貸出不能な機材はresource_unavailable", func(t *testing.T) {
		f := newBookingCommandsFixture(t, config.BookingConfig{})
		equip := builder.NewEquipmentSnapshotBuilder().WithStatus("maintenance").Build()
		requester := builder.NewUserSnapshotBuilder().Build()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().UserByID(gomock.Any(), requester.ID).Return(requester, nil)
		f.reads.EXPECT().EquipmentByID(gomock.Any(), equip.ID).Return(equip, nil)

		d, err := f.cmds.Validate(context.Background(), validInput(equip, requester))
		require.NoError(t, err)
		assert.Equal(t, booking.ReasonResourceUnavailable, d.Reason)
	})

	t.Run("ウィンドウ重複はscheduling_conflictで詳細付き", func(t *testing.T) {
		f := newBookingCommandsFixture(t, config.BookingConfig{})
		equip := builder.NewEquipmentSnapshotBuilder().Build()
		requester := builder.NewUserSnapshotBuilder().Build()
		in := validInput(equip, requester)

		occupying := builder.NewBookingBuilder().
			WithEquipment(equip.ID).
			WithWindow(in.Window.Start().Add(time.Hour), in.Window.End().Add(time.Hour)).
			BuildOccupying()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().UserByID(gomock.Any(), requester.ID).Return(requester, nil)
		f.reads.EXPECT().EquipmentByID(gomock.Any(), equip.ID).Return(equip, nil).Times(2)
		f.reads.EXPECT().OccupyingBookings(gomock.Any(), []uuid.UUID{equip.ID}, in.Window, nil).
			Return([]shared.OccupyingBooking{occupying}, nil)

		d, err := f.cmds.Validate(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, booking.ReasonSchedulingConflict, d.Reason)
		require.Len(t, d.Conflicts, 1)
		assert.Equal(t, occupying.BookingID, d.Conflicts[0].BookingID)
	})

	t.Run("在庫照会の失敗は却下扱い", func(t *testing.T) {
		f := newBookingCommandsFixture(t, config.BookingConfig{})
		equip := builder.NewEquipmentSnapshotBuilder().Build()
		requester := builder.NewUserSnapshotBuilder().Build()
		in := validInput(equip, requester)

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().UserByID(gomock.Any(), requester.ID).Return(requester, nil)
		f.reads.EXPECT().EquipmentByID(gomock.Any(), equip.ID).Return(equip, nil).Times(2)
		f.reads.EXPECT().OccupyingBookings(gomock.Any(), []uuid.UUID{equip.ID}, in.Window, nil).
			Return(nil, errs.New("connection reset"))

		// 検証できないウィンドウは占有済みとして扱い、エラーにはしない
		d, err := f.cmds.Validate(context.Background(), in)
		require.NoError(t, err)
		assert.False(t, d.Accepted)
		assert.Equal(t, booking.ReasonSchedulingConflict, d.Reason)
	})

	t.Run("除外IDは在庫照会へ引き継がれる", func(t *testing.T) {
		f := newBookingCommandsFixture(t, config.BookingConfig{})
		equip := builder.NewEquipmentSnapshotBuilder().Build()
		requester := builder.NewUserSnapshotBuilder().Build()
		in := validInput(equip, requester)
		exclude := uuid.New()
		in.ExcludeBookingID = &exclude

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().UserByID(gomock.Any(), requester.ID).Return(requester, nil)
		f.reads.EXPECT().EquipmentByID(gomock.Any(), equip.ID).Return(equip, nil).Times(2)
		f.reads.EXPECT().OccupyingBookings(gomock.Any(), []uuid.UUID{equip.ID}, in.Window, &exclude).
			Return(nil, nil)

		d, err := f.cmds.Validate(context.Background(), in)
		require.NoError(t, err)
		assert.True(t, d.Accepted)
	})

	t.Run("全チェック通過で受理", func(t *testing.T) {
		f := newBookingCommandsFixture(t, config.BookingConfig{MaxDurationDays: 7, MinAdvanceHours: 1})
		equip := builder.NewEquipmentSnapshotBuilder().Build()
		requester := builder.NewUserSnapshotBuilder().Build()
		in := validInput(equip, requester)

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().UserByID(gomock.Any(), requester.ID).Return(requester, nil)
		f.reads.EXPECT().EquipmentByID(gomock.Any(), equip.ID).Return(equip, nil).Times(2)
		f.reads.EXPECT().OccupyingBookings(gomock.Any(), []uuid.UUID{equip.ID}, in.Window, nil).
			Return(nil, nil)

		d, err := f.cmds.Validate(context.Background(), in)
		require.NoError(t, err)
		assert.True(t, d.Accepted)
		assert.Empty(t, d.Reason)
	})
}

func TestBookingCommands_Create(t *testing.T) {
	newCreateInput := func(equip *shared.EquipmentSnapshot, requester *shared.UserSnapshot) commands.CreateBookingInput {
		return commands.CreateBookingInput{
			EquipmentID: equip.ID,
			RequesterID: requester.ID,
			Window:      booking.ReconstructWindow(builder.BaseTime.Add(24*time.Hour), builder.BaseTime.Add(26*time.Hour)),
			Note:        "撮影用",
		}
	}

	expectValidatePass := func(reads *sharedmock.MockCommandReads, equip *shared.EquipmentSnapshot, requester *shared.UserSnapshot, w booking.Window) {
		reads.EXPECT().UserByID(gomock.Any(), requester.ID).Return(requester, nil).AnyTimes()
		reads.EXPECT().EquipmentByID(gomock.Any(), equip.ID).Return(equip, nil).AnyTimes()
		reads.EXPECT().OccupyingBookings(gomock.Any(), gomock.Any(), w, nil).Return(nil, nil).AnyTimes()
	}

	t.Run("事前検証で却下されたらトランザクションを開かない", func(t *testing.T) {
		f := newBookingCommandsFixture(t, config.BookingConfig{})
		equip := builder.NewEquipmentSnapshotBuilder().Build()
		requester := builder.NewUserSnapshotBuilder().Inactive().Build()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().UserByID(gomock.Any(), requester.ID).Return(requester, nil)

		res, err := f.cmds.Create(context.Background(), newCreateInput(equip, requester))
		require.NoError(t, err)
		assert.False(t, res.Decision.Accepted)
		assert.Equal(t, booking.ReasonNotEligible, res.Decision.Reason)
		assert.Equal(t, uuid.Nil, res.BookingID)
	})

	t.Run("受理されたら永続化され通知がキューされる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingCommandsFixture(t, config.BookingConfig{})
		equip := builder.NewEquipmentSnapshotBuilder().Build()
		requester := builder.NewUserSnapshotBuilder().Build()
		in := newCreateInput(equip, requester)
		createdID := uuid.New()

		f.uow.EXPECT().CommandReads().Return(f.reads)
		expectValidatePass(f.reads, equip, requester, in.Window)

		tx := sharedmock.NewMockTx(ctrl)
		txReads := sharedmock.NewMockCommandReads(ctrl)
		bookings := sharedmock.NewMockBookingRepository(ctrl)
		notifications := sharedmock.NewMockNotificationRepository(ctrl)
		tx.EXPECT().Reads().Return(txReads).AnyTimes()
		tx.EXPECT().Bookings().Return(bookings).AnyTimes()
		tx.EXPECT().Notifications().Return(notifications).AnyTimes()
		expectValidatePass(txReads, equip, requester, in.Window)
		bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(createdID, nil)
		notifications.EXPECT().CreateJob(gomock.Any(), "email", "booking.requested", gomock.Any(), builder.BaseTime).
			Return(nil)

		f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, tx)
			})

		res, err := f.cmds.Create(context.Background(), in)
		require.NoError(t, err)
		assert.True(t, res.Decision.Accepted)
		assert.Equal(t, createdID, res.BookingID)
	})

	t.Run("排他プールはタイプ行をロックしてから再検証する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingCommandsFixture(t, config.BookingConfig{})
		equip := builder.NewEquipmentSnapshotBuilder().Exclusive().Build()
		requester := builder.NewUserSnapshotBuilder().Build()
		in := newCreateInput(equip, requester)

		f.uow.EXPECT().CommandReads().Return(f.reads)
		expectValidatePass(f.reads, equip, requester, in.Window)
		f.reads.EXPECT().UnitIDsOfType(gomock.Any(), equip.TypeID).
			Return([]uuid.UUID{equip.ID}, nil).AnyTimes()

		tx := sharedmock.NewMockTx(ctrl)
		txReads := sharedmock.NewMockCommandReads(ctrl)
		equipment := sharedmock.NewMockEquipmentRepository(ctrl)
		bookings := sharedmock.NewMockBookingRepository(ctrl)
		notifications := sharedmock.NewMockNotificationRepository(ctrl)
		tx.EXPECT().Reads().Return(txReads).AnyTimes()
		tx.EXPECT().Equipment().Return(equipment).AnyTimes()
		tx.EXPECT().Bookings().Return(bookings).AnyTimes()
		tx.EXPECT().Notifications().Return(notifications).AnyTimes()
		expectValidatePass(txReads, equip, requester, in.Window)
		txReads.EXPECT().UnitIDsOfType(gomock.Any(), equip.TypeID).
			Return([]uuid.UUID{equip.ID}, nil).AnyTimes()
		equipment.EXPECT().LockType(gomock.Any(), equip.TypeID).Return(nil)
		bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		notifications.EXPECT().CreateJob(gomock.Any(), "email", "booking.requested", gomock.Any(), gomock.Any()).
			Return(nil)

		f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, tx)
			})

		res, err := f.cmds.Create(context.Background(), in)
		require.NoError(t, err)
		assert.True(t, res.Decision.Accepted)
	})

	t.Run("挿入時の排他制約違反は同時確保として却下", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingCommandsFixture(t, config.BookingConfig{})
		equip := builder.NewEquipmentSnapshotBuilder().Build()
		requester := builder.NewUserSnapshotBuilder().Build()
		in := newCreateInput(equip, requester)

		f.uow.EXPECT().CommandReads().Return(f.reads)
		expectValidatePass(f.reads, equip, requester, in.Window)

		tx := sharedmock.NewMockTx(ctrl)
		txReads := sharedmock.NewMockCommandReads(ctrl)
		bookings := sharedmock.NewMockBookingRepository(ctrl)
		tx.EXPECT().Reads().Return(txReads).AnyTimes()
		tx.EXPECT().Bookings().Return(bookings).AnyTimes()
		expectValidatePass(txReads, equip, requester, in.Window)
		bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("duplicate window"), errs.ErrBookingConflict))

		f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, tx)
			})

		res, err := f.cmds.Create(context.Background(), in)
		require.NoError(t, err)
		assert.False(t, res.Decision.Accepted)
		assert.Equal(t, booking.ReasonSchedulingConflict, res.Decision.Reason)
		assert.Equal(t, uuid.Nil, res.BookingID)
	})
}

func TestBookingCommands_Lifecycle(t *testing.T) {
	t.Run("一般メンバーは承認できない", func(t *testing.T) {
		f := newBookingCommandsFixture(t, config.BookingConfig{})
		actor := builder.NewUserSnapshotBuilder().Build()

		_, err := f.cmds.Approve(context.Background(), *actor, uuid.New())
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("申請者本人は自分の予約を取り消せる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingCommandsFixture(t, config.BookingConfig{})
		actor := builder.NewUserSnapshotBuilder().Build()
		snap := builder.NewBookingBuilder().WithRequester(actor.ID).BuildSnapshot()

		tx := sharedmock.NewMockTx(ctrl)
		txReads := sharedmock.NewMockCommandReads(ctrl)
		bookings := sharedmock.NewMockBookingRepository(ctrl)
		notifications := sharedmock.NewMockNotificationRepository(ctrl)
		tx.EXPECT().Reads().Return(txReads).AnyTimes()
		tx.EXPECT().Bookings().Return(bookings).AnyTimes()
		tx.EXPECT().Notifications().Return(notifications).AnyTimes()
		txReads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)
		bookings.EXPECT().UpdateStatus(gomock.Any(), snap.ID, booking.StatusCancelled).Return(nil)
		notifications.EXPECT().CreateJob(gomock.Any(), "email", "booking.cancelled", gomock.Any(), gomock.Any()).
			Return(nil)

		f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, tx)
			})

		err := f.cmds.Cancel(context.Background(), *actor, snap.ID)
		require.NoError(t, err)
	})

	t.Run("他人の予約の取消は権限が要る", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingCommandsFixture(t, config.BookingConfig{})
		actor := builder.NewUserSnapshotBuilder().Build()
		snap := builder.NewBookingBuilder().BuildSnapshot()

		tx := sharedmock.NewMockTx(ctrl)
		txReads := sharedmock.NewMockCommandReads(ctrl)
		tx.EXPECT().Reads().Return(txReads).AnyTimes()
		txReads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)

		f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, tx)
			})

		err := f.cmds.Cancel(context.Background(), *actor, snap.ID)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("完了済み予約の承認はErrInvalidTransition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newBookingCommandsFixture(t, config.BookingConfig{})
		actor := builder.NewUserSnapshotBuilder().WithRole("staff").Build()
		snap := builder.NewBookingBuilder().WithStatus("completed").BuildSnapshot()

		tx := sharedmock.NewMockTx(ctrl)
		txReads := sharedmock.NewMockCommandReads(ctrl)
		tx.EXPECT().Reads().Return(txReads).AnyTimes()
		txReads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)
		txReads.EXPECT().EquipmentByID(gomock.Any(), snap.EquipmentID).
			Return(builder.NewEquipmentSnapshotBuilder().Build(), nil).AnyTimes()
		txReads.EXPECT().OccupyingBookings(gomock.Any(), gomock.Any(), snap.Window, &snap.ID).
			Return(nil, nil)

		f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, tx)
			})

		_, err := f.cmds.Approve(context.Background(), *actor, snap.ID)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}
