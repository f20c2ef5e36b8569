package keeper_test

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/mintgate-labs/mintgate/testutil/datagen"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
	mtokentypes "github.com/mintgate-labs/mintgate/x/mtoken/types"
)

func TestBurnMActiveMinter(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()
	h.updateCollateral(minter, 1_000_000)
	holder := h.mint(minter, 500_000)

	_, _, err := h.Keeper.BurnM(h.Ctx, holder, minter, sdkmath.ZeroUint())
	require.ErrorIs(t, err, types.ErrZeroAmount)

	principal, amount, err := h.Keeper.BurnM(h.Ctx, holder, minter, sdkmath.NewUint(200_000))
	require.NoError(t, err)
	require.Equal(t, uint64(200_000), principal.Uint64())
	require.Equal(t, uint64(200_000), amount.Uint64())
	owed, err := h.Keeper.ActiveOwedMOf(h.Ctx, minter)
	require.NoError(t, err)
	require.Equal(t, uint64(300_000), owed.Uint64())
	require.Equal(t, int64(300_000), h.Bank.Balance(holder, mtokentypes.DefaultDenom).Int64())

	// repayment is capped at what is owed
	_, amount, err = h.Keeper.BurnM(h.Ctx, holder, minter, sdkmath.NewUint(1_000_000))
	require.NoError(t, err)
	require.Equal(t, uint64(300_000), amount.Uint64())
	require.True(t, h.Keeper.PrincipalOfActiveOwedMOf(h.Ctx, minter).IsZero())
	require.True(t, h.Keeper.TotalPrincipalOfActiveOwedM(h.Ctx).IsZero())
	require.True(t, h.Bank.Balance(holder, mtokentypes.DefaultDenom).IsZero())

	burns := h.Ledger.CallsTo("Burn")
	require.Len(t, burns, 2)
	require.Equal(t, holder, burns[0].Account)
	h.requireEffectsCommitted()
	h.requireInvariants()
}

func TestDeactivateMinter(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()
	h.updateCollateral(minter, 1_000_000)
	holder := h.mint(minter, 500_000)

	retrievalID, err := h.Keeper.ProposeRetrieval(h.Ctx, minter, sdkmath.NewUint(100_000))
	require.NoError(t, err)
	_, err = h.Keeper.ProposeMint(h.Ctx, minter, sdkmath.NewUint(10), datagen.GenRandomAddress())
	require.NoError(t, err)

	_, err = h.Keeper.DeactivateMinter(h.Ctx, holder, minter)
	require.ErrorIs(t, err, types.ErrStillApprovedMinter)

	require.NoError(t, h.Registrar.RevokeMinter(h.Ctx, minter))
	inactive, err := h.Keeper.DeactivateMinter(h.Ctx, holder, minter)
	require.NoError(t, err)
	require.Equal(t, uint64(500_000), inactive.Uint64())

	s := h.Keeper.GetMinterState(h.Ctx, minter)
	require.True(t, s.IsDeactivated)
	require.False(t, s.IsActive)
	require.True(t, s.Collateral.IsZero())
	require.True(t, s.TotalPendingRetrievals.IsZero())
	require.True(t, s.PrincipalOfActiveOwedM.IsZero())
	require.Equal(t, uint64(500_000), s.InactiveOwedM.Uint64())
	require.True(t, h.Keeper.TotalPrincipalOfActiveOwedM(h.Ctx).IsZero())
	require.Equal(t, uint64(500_000), h.Keeper.TotalInactiveOwedM(h.Ctx).Uint64())
	require.True(t, h.Keeper.PendingCollateralRetrievalOf(h.Ctx, minter, retrievalID).IsZero())
	_, found := h.Keeper.GetMintProposal(h.Ctx, minter)
	require.False(t, found)

	// deactivation is terminal
	_, err = h.Keeper.DeactivateMinter(h.Ctx, holder, minter)
	require.ErrorIs(t, err, types.ErrNotActiveMinter)
	require.ErrorIs(t, h.Keeper.ActivateMinter(h.Ctx, minter, minter), types.ErrNotApprovedMinter)
	require.NoError(t, h.Registrar.ApproveMinter(h.Ctx, minter))
	require.ErrorIs(t, h.Keeper.ActivateMinter(h.Ctx, minter, minter), types.ErrAlreadyDeactivated)

	// inactive owed M is repaid as is
	principal, amount, err := h.Keeper.BurnM(h.Ctx, holder, minter, sdkmath.NewUint(100_000))
	require.NoError(t, err)
	require.True(t, principal.IsZero())
	require.Equal(t, uint64(100_000), amount.Uint64())
	require.Equal(t, uint64(400_000), h.Keeper.InactiveOwedMOf(h.Ctx, minter).Uint64())
	require.Equal(t, uint64(400_000), h.Keeper.TotalInactiveOwedM(h.Ctx).Uint64())

	excess, err := h.Keeper.ExcessOwedM(h.Ctx)
	require.NoError(t, err)
	require.True(t, excess.IsZero())
	h.requireInvariants()
}

func TestDeactivateMinterChargesMissedUpdates(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()
	start := h.Ctx.HeaderInfo().Time
	h.updateCollateral(minter, 1_000_000)
	h.mint(minter, 100_000)

	h.SetTime(start.Add(2*day + time.Second))
	require.NoError(t, h.Registrar.RevokeMinter(h.Ctx, minter))
	inactive, err := h.Keeper.DeactivateMinter(h.Ctx, minter, minter)
	require.NoError(t, err)
	// two missed days at 1% each
	require.Equal(t, uint64(102_000), inactive.Uint64())

	// the penalty was minted to the treasury when the index was resynced
	require.Equal(t, uint64(102_000), h.Token.TotalSupply(h.Ctx).Uint64())
	require.Equal(t, int64(2_000), h.Bank.Balance(h.Registrar.Treasury(h.Ctx), mtokentypes.DefaultDenom).Int64())
	h.requireInvariants()
}

func TestBurnMUnknownMinter(t *testing.T) {
	h := newHarness(t, 1)

	principal, amount, err := h.Keeper.BurnM(h.Ctx, datagen.GenRandomAddress(), datagen.GenRandomAddress(), sdkmath.NewUint(5))
	require.NoError(t, err)
	require.True(t, principal.IsZero())
	require.True(t, amount.IsZero())
	h.requireInvariants()
}
