package keeper_test

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/mintgate-labs/mintgate/testutil/events"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
	registrartypes "github.com/mintgate-labs/mintgate/x/registrar/types"
)

func TestUpdateCollateral(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()

	h.updateCollateral(minter, 1_000_000)
	require.Equal(t, uint64(1_000_000), h.Keeper.CollateralOf(h.Ctx, minter).Uint64())
	require.Equal(t, h.Now()+uint64(registrartypes.DefaultUpdateCollateralInterval), h.Keeper.CollateralExpiryOf(h.Ctx, minter))
	require.Len(t, events.OfType(h.Ctx, types.EventTypeCollateralUpdated), 1)

	// an attestation older than the recorded one is stale
	recorded := h.Now()
	h.AdvanceTime(100 * time.Second)
	att := h.attestation(minter, 2_000_000, nil, recorded-1, h.validators[0])
	_, err := h.Keeper.UpdateCollateral(h.Ctx, minter, att)
	require.ErrorIs(t, err, types.ErrStaleUpdate)

	// the same timestamp is accepted again
	att = h.attestation(minter, 2_000_000, nil, recorded, h.validators[0])
	ts, err := h.Keeper.UpdateCollateral(h.Ctx, minter, att)
	require.NoError(t, err)
	require.Equal(t, recorded, ts)
	require.Equal(t, uint64(2_000_000), h.Keeper.CollateralOf(h.Ctx, minter).Uint64())

	// collateral is distrusted once the update expires
	h.SetTime(time.Unix(int64(h.Keeper.CollateralExpiryOf(h.Ctx, minter)), 0).UTC())
	require.True(t, h.Keeper.CollateralOf(h.Ctx, minter).IsZero())
	h.requireInvariants()
}

func TestUpdateCollateralRequiresActiveMinter(t *testing.T) {
	h := newHarness(t, 1)
	stranger := h.activeMinter()
	require.NoError(t, h.Registrar.RevokeMinter(h.Ctx, stranger))
	_, err := h.Keeper.DeactivateMinter(h.Ctx, stranger, stranger)
	require.NoError(t, err)

	att := h.attestation(stranger, 1, nil, h.Now(), h.validators[0])
	_, err = h.Keeper.UpdateCollateral(h.Ctx, stranger, att)
	require.ErrorIs(t, err, types.ErrNotActiveMinter)
}

func TestMissedIntervalsPenalty(t *testing.T) {
	h := newHarness(t, 1)
	interval := 30 * day
	h.SetParams(t, func(p *registrartypes.Params) {
		p.UpdateCollateralInterval = uint32(interval.Seconds())
	})
	minter := h.activeMinter()
	start := h.Ctx.HeaderInfo().Time

	h.updateCollateral(minter, 1_000_000)
	h.mint(minter, 500_000)
	require.Equal(t, uint64(500_000), h.Keeper.PrincipalOfActiveOwedMOf(h.Ctx, minter).Uint64())

	// two full intervals pass without an update
	h.SetTime(start.Add(2*interval + 100*time.Second))
	preview, err := h.Keeper.PenaltyForMissedCollateralUpdates(h.Ctx, minter)
	require.NoError(t, err)
	// 2 x 500,000 x 1%
	require.Equal(t, uint64(10_000), preview.Uint64())

	h.updateCollateral(minter, 1_000_000)
	s := h.Keeper.GetMinterState(h.Ctx, minter)
	require.Equal(t, uint64(510_000), s.PrincipalOfActiveOwedM.Uint64())
	firstDeadline := uint64(start.Add(interval).Unix())
	require.Equal(t, firstDeadline+uint64(interval.Seconds()), s.PenalizedUntilTimestamp)

	penalties := events.OfType(h.Ctx, types.EventTypePenaltyImposed)
	require.Len(t, penalties, 1)
	events.RequireEventAttribute(t, penalties[0], types.AttributeKeyPenaltyKind, types.PenaltyKindMissedUpdates)
	events.RequireEventAttribute(t, penalties[0], types.AttributeKeyMissedIntervals, "2")

	// a second update within the new interval is not charged again
	h.AdvanceTime(time.Hour)
	preview, err = h.Keeper.PenaltyForMissedCollateralUpdates(h.Ctx, minter)
	require.NoError(t, err)
	require.True(t, preview.IsZero())
	h.updateCollateral(minter, 1_000_000)
	require.Equal(t, uint64(510_000), h.Keeper.PrincipalOfActiveOwedMOf(h.Ctx, minter).Uint64())
	require.Equal(t, uint64(510_000), h.Keeper.TotalPrincipalOfActiveOwedM(h.Ctx).Uint64())
	h.requireInvariants()
}

func TestMissedIntervalsWithoutOwedMAdvancePenalizedUntil(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()
	start := h.Ctx.HeaderInfo().Time

	h.updateCollateral(minter, 1_000_000)
	h.SetTime(start.Add(day + 3*day + time.Minute))

	preview, err := h.Keeper.PenaltyForMissedCollateralUpdates(h.Ctx, minter)
	require.NoError(t, err)
	require.True(t, preview.IsZero())

	h.updateCollateral(minter, 1_000_000)
	s := h.Keeper.GetMinterState(h.Ctx, minter)
	// 4 missed intervals, the window ends at the start of the last one
	firstDeadline := uint64(start.Add(day).Unix())
	require.Equal(t, firstDeadline+3*uint64(day.Seconds()), s.PenalizedUntilTimestamp)
	require.True(t, s.PrincipalOfActiveOwedM.IsZero())
	require.Empty(t, events.OfType(h.Ctx, types.EventTypePenaltyImposed))
	h.requireInvariants()
}

func TestMissedIntervalsUseCurrentInterval(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()
	start := h.Ctx.HeaderInfo().Time

	h.updateCollateral(minter, 1_000_000)
	h.mint(minter, 100_000)

	// the deadline keeps the one day interval of the last update, later
	// intervals are two days long
	h.SetParams(t, func(p *registrartypes.Params) {
		p.UpdateCollateralInterval = uint32((2 * day).Seconds())
	})
	h.SetTime(start.Add(day + 3*day))

	s := h.Keeper.GetMinterState(h.Ctx, minter)
	require.Equal(t, uint32(day.Seconds()), s.LastUpdateInterval)

	preview, err := h.Keeper.PenaltyForMissedCollateralUpdates(h.Ctx, minter)
	require.NoError(t, err)
	// 1 + 3 days / 2 days = 2 missed intervals
	require.Equal(t, uint64(2_000), preview.Uint64())
}

func TestUndercollateralizedPenalty(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()

	h.updateCollateral(minter, 1_000_000)
	h.mint(minter, 900_000)

	// max allowed drops to 450,000 while 900,000 is owed
	h.updateCollateral(minter, 500_000)
	// 1% of the 450,000 excess
	require.Equal(t, uint64(904_500), h.Keeper.PrincipalOfActiveOwedMOf(h.Ctx, minter).Uint64())

	penalties := events.OfType(h.Ctx, types.EventTypePenaltyImposed)
	require.Len(t, penalties, 1)
	events.RequireEventAttribute(t, penalties[0], types.AttributeKeyPenaltyKind, types.PenaltyKindUndercollateral)
	h.requireInvariants()
}

func TestRetrievals(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()
	h.updateCollateral(minter, 1_000_000)

	_, err := h.Keeper.ProposeRetrieval(h.Ctx, minter, sdkmath.ZeroUint())
	require.ErrorIs(t, err, types.ErrZeroAmount)

	id, err := h.Keeper.ProposeRetrieval(h.Ctx, minter, sdkmath.NewUint(400_000))
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)
	require.Equal(t, uint64(600_000), h.Keeper.CollateralOf(h.Ctx, minter).Uint64())
	require.Equal(t, uint64(400_000), h.Keeper.PendingCollateralRetrievalOf(h.Ctx, minter, id).Uint64())

	_, err = h.Keeper.ProposeRetrieval(h.Ctx, minter, sdkmath.NewUint(700_000))
	require.ErrorIs(t, err, types.ErrRetrievalExceedsCollateral)

	// 500,000 owed against 90% of the remaining 600,000
	h.mint(minter, 500_000)
	_, err = h.Keeper.ProposeRetrieval(h.Ctx, minter, sdkmath.NewUint(100_000))
	require.ErrorIs(t, err, types.ErrUndercollateralized)
	require.Equal(t, uint64(1), h.Keeper.RetrievalNonce(h.Ctx))

	// resolving the same id twice in one update releases it once
	h.updateCollateral(minter, 1_000_000, id, id, 99)
	s := h.Keeper.GetMinterState(h.Ctx, minter)
	require.True(t, s.TotalPendingRetrievals.IsZero())
	require.True(t, h.Keeper.PendingCollateralRetrievalOf(h.Ctx, minter, id).IsZero())
	require.Equal(t, uint64(1_000_000), h.Keeper.CollateralOf(h.Ctx, minter).Uint64())

	update := events.RequireLast(t, h.Ctx, types.EventTypeCollateralUpdated)
	events.RequireEventAttribute(t, update, types.AttributeKeyResolvedAmount, "400000")

	// and resolving it in a later update contributes nothing
	h.updateCollateral(minter, 1_000_000, id)
	require.True(t, h.Keeper.GetMinterState(h.Ctx, minter).TotalPendingRetrievals.IsZero())
	h.requireInvariants()
}
