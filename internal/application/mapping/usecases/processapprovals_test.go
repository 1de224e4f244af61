package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tosinajy/carrier-code-verify/internal/domain/audit"
	"github.com/tosinajy/carrier-code-verify/internal/domain/carrier"
	"github.com/tosinajy/carrier-code-verify/internal/domain/directory"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/query"
)

func newProcessApprovals(fx *mappingFixture) *ProcessApprovalsUseCase {
	return NewProcessApprovalsUseCase(fx.payers, fx.carriers, fx.audits, fx.txMgr, logger.NewNopLogger())
}

func submit(t *testing.T, fx *mappingFixture, payerID uint, naicID *uint) {
	t.Helper()
	assign := NewAssignNaicUseCase(fx.payers, fx.naics, nil, logger.NewNopLogger())
	require.NoError(t, assign.Execute(context.Background(), AssignNaicCommand{
		PayerID: payerID,
		NaicID:  naicID,
		NoNaic:  naicID == nil,
	}))
}

func TestProcessApprovals_ApproveLinksCarriers(t *testing.T) {
	fx := newMappingFixture(t)
	ctx := context.Background()

	linked := fx.addPayer(t, "60054", "Aetna")
	unlinked := fx.addPayer(t, "999", "Nobody")
	untouched := fx.addPayer(t, "87726", "UnitedHealthcare")
	first := fx.addNaic(t, "60054", "Aetna Life")
	second := fx.addNaic(t, "79413", "UnitedHealthcare Insurance")

	submit(t, fx, linked.ID(), uintPtr(first.ID()))
	submit(t, fx, unlinked.ID(), nil)
	submit(t, fx, untouched.ID(), uintPtr(second.ID()))

	uc := newProcessApprovals(fx)
	result, err := uc.Execute(ctx, ProcessApprovalsCommand{
		PayerIDs:  []uint{linked.ID(), unlinked.ID(), linked.ID()},
		Action:    "approve",
		ChangedBy: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Updated)
	assert.Equal(t, []uint{unlinked.ID()}, result.Blocked)
	assert.Equal(t, 1, result.CarriersCreated)
	assert.Equal(t, "Items approved.", result.FlashMessage())

	assert.Equal(t, payer.StatusApproved, fx.reload(t, linked.ID()).Status())
	assert.Equal(t, payer.StatusPending, fx.reload(t, unlinked.ID()).Status())
	assert.Equal(t, payer.StatusPending, fx.reload(t, untouched.ID()).Status())

	c, err := fx.carriers.GetByPayerID(ctx, linked.ID())
	require.NoError(t, err)
	assert.Equal(t, first.ID(), c.NaicID)

	entries, err := fx.audits.ListByCarrier(ctx, c.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ActionCreated, entries[0].Action)
	assert.Equal(t, "admin", entries[0].ChangedBy)

	t.Run("re-approval on a new naic moves the carrier", func(t *testing.T) {
		submit(t, fx, linked.ID(), uintPtr(second.ID()))

		result, err := uc.Execute(ctx, ProcessApprovalsCommand{PayerIDs: []uint{linked.ID()}, Action: "approve"})
		require.NoError(t, err)
		assert.Equal(t, 1, result.CarriersMoved)

		moved, err := fx.carriers.GetByPayerID(ctx, linked.ID())
		require.NoError(t, err)
		assert.Equal(t, c.ID, moved.ID)
		assert.Equal(t, second.ID(), moved.NaicID)

		entries, err := fx.audits.ListByCarrier(ctx, c.ID, 10)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, audit.ActionUpdated, entries[0].Action)
		assert.EqualValues(t, first.ID(), entries[0].Changes["previous_naic_id"])
	})

	t.Run("approving twice writes no extra audit", func(t *testing.T) {
		result, err := uc.Execute(ctx, ProcessApprovalsCommand{PayerIDs: []uint{linked.ID()}, Action: "approve"})
		require.NoError(t, err)
		assert.Zero(t, result.CarriersCreated)
		assert.Zero(t, result.CarriersMoved)

		entries, err := fx.audits.ListByCarrier(ctx, c.ID, 10)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}

func TestProcessApprovals_Reject(t *testing.T) {
	fx := newMappingFixture(t)
	ctx := context.Background()

	a := fx.addPayer(t, "1", "One")
	b := fx.addPayer(t, "2", "Two")
	rec := fx.addNaic(t, "11111", "Company")
	submit(t, fx, a.ID(), uintPtr(rec.ID()))
	submit(t, fx, b.ID(), nil)

	result, err := newProcessApprovals(fx).Execute(ctx, ProcessApprovalsCommand{
		PayerIDs: []uint{a.ID(), b.ID()},
		Action:   "anything else",
	})
	require.NoError(t, err)
	assert.Equal(t, "reject", result.Action)
	assert.Equal(t, int64(2), result.Updated)
	assert.Empty(t, result.Blocked)
	assert.Equal(t, "Items rejected.", result.FlashMessage())

	assert.Equal(t, payer.StatusRejected, fx.reload(t, a.ID()).Status())
	assert.Equal(t, payer.StatusRejected, fx.reload(t, b.ID()).Status())

	total, err := fx.carriers.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestProcessApprovals_UnapprovedCarrierLeavesDirectory(t *testing.T) {
	fx := newMappingFixture(t)
	ctx := context.Background()

	p := fx.addPayer(t, "60054", "Aetna")
	rec := fx.addNaic(t, "60054", "Aetna Life")
	uc := newProcessApprovals(fx)

	visible := func() int64 {
		t.Helper()
		_, total, err := fx.directory.ListCarriers(ctx, directory.ListFilter{BaseFilter: query.NewBaseFilter()})
		require.NoError(t, err)
		return total
	}

	submit(t, fx, p.ID(), uintPtr(rec.ID()))
	_, err := uc.Execute(ctx, ProcessApprovalsCommand{PayerIDs: []uint{p.ID()}, Action: "approve", ChangedBy: "admin"})
	require.NoError(t, err)
	c, err := fx.carriers.GetByPayerID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), visible())

	_, err = uc.Execute(ctx, ProcessApprovalsCommand{PayerIDs: []uint{p.ID()}, Action: "reject"})
	require.NoError(t, err)
	assert.Zero(t, visible())
	_, err = fx.directory.GetCarrierDetail(ctx, c.ID)
	assert.ErrorIs(t, err, carrier.ErrCarrierNotFound)

	kept, err := fx.carriers.GetByPayerID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, c.ID, kept.ID)
	entries, err := fx.audits.ListByCarrier(ctx, c.ID, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = uc.Execute(ctx, ProcessApprovalsCommand{PayerIDs: []uint{p.ID()}, Action: "approve"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), visible())

	submit(t, fx, p.ID(), uintPtr(rec.ID()))
	assert.Zero(t, visible())
}

func TestProcessApprovals_EmptySelection(t *testing.T) {
	fx := newMappingFixture(t)

	for _, ids := range [][]uint{nil, {}, {0}} {
		_, err := newProcessApprovals(fx).Execute(context.Background(), ProcessApprovalsCommand{PayerIDs: ids, Action: "approve"})
		require.Error(t, err)
		assert.True(t, sharedErrors.IsSelectionError(err))
		assert.Equal(t, "No items selected.", sharedErrors.GetAppError(err).Message)
	}
}
