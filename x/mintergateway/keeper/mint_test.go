package keeper_test

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/mintgate-labs/mintgate/testutil/datagen"
	"github.com/mintgate-labs/mintgate/testutil/events"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
	mtokentypes "github.com/mintgate-labs/mintgate/x/mtoken/types"
	registrartypes "github.com/mintgate-labs/mintgate/x/registrar/types"
)

func TestProposeMintRespectsMintRatio(t *testing.T) {
	h := newHarness(t, 1)
	h.SetParams(t, func(p *registrartypes.Params) {
		p.MintRatio = 8_000
	})
	minter := h.activeMinter()
	dest := datagen.GenRandomAddress()

	h.updateCollateral(minter, 1_000_000)
	maxAllowed, err := h.Keeper.MaxAllowedActiveOwedMOf(h.Ctx, minter)
	require.NoError(t, err)
	require.Equal(t, uint64(800_000), maxAllowed.Uint64())

	_, err = h.Keeper.ProposeMint(h.Ctx, minter, sdkmath.NewUint(800_001), dest)
	require.ErrorIs(t, err, types.ErrUndercollateralized)

	id, err := h.Keeper.ProposeMint(h.Ctx, minter, sdkmath.NewUint(800_000), dest)
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	p, found := h.Keeper.GetMintProposal(h.Ctx, minter)
	require.True(t, found)
	require.Equal(t, dest.String(), p.Destination)
	require.Equal(t, h.Now(), p.CreatedAt)
}

func TestProposeMintRejectsInvalidInput(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()
	h.updateCollateral(minter, 1_000_000)

	_, err := h.Keeper.ProposeMint(h.Ctx, minter, sdkmath.ZeroUint(), datagen.GenRandomAddress())
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, err = h.Keeper.ProposeMint(h.Ctx, minter, sdkmath.OneUint(), sdk.AccAddress{})
	require.ErrorIs(t, err, types.ErrInvalidDestination)

	_, err = h.Keeper.ProposeMint(h.Ctx, datagen.GenRandomAddress(), sdkmath.OneUint(), datagen.GenRandomAddress())
	require.ErrorIs(t, err, types.ErrNotActiveMinter)
}

func TestMintMWindow(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()
	h.updateCollateral(minter, 1_000_000)
	dest := datagen.GenRandomAddress()

	delay := time.Duration(registrartypes.DefaultMintDelay) * time.Second
	ttl := time.Duration(registrartypes.DefaultMintTTL) * time.Second

	id, err := h.Keeper.ProposeMint(h.Ctx, minter, sdkmath.NewUint(300_000), dest)
	require.NoError(t, err)
	created := h.Ctx.HeaderInfo().Time

	_, _, err = h.Keeper.MintM(h.Ctx, minter, id+1)
	require.ErrorIs(t, err, types.ErrProposalMismatch)

	h.SetTime(created.Add(delay - time.Second))
	_, _, err = h.Keeper.MintM(h.Ctx, minter, id)
	require.ErrorIs(t, err, types.ErrProposalNotYetActive)

	h.SetTime(created.Add(delay + ttl + time.Second))
	_, _, err = h.Keeper.MintM(h.Ctx, minter, id)
	require.ErrorIs(t, err, types.ErrProposalExpired)

	// the last second of the window is still valid; refresh the collateral
	// which expired in the meantime
	h.SetTime(created.Add(delay + ttl))
	h.updateCollateral(minter, 1_000_000)
	principal, amount, err := h.Keeper.MintM(h.Ctx, minter, id)
	require.NoError(t, err)
	require.Equal(t, uint64(300_000), principal.Uint64())
	require.Equal(t, uint64(300_000), amount.Uint64())

	_, found := h.Keeper.GetMintProposal(h.Ctx, minter)
	require.False(t, found)
	require.Equal(t, int64(300_000), h.Bank.Balance(dest, mtokentypes.DefaultDenom).Int64())
	require.Equal(t, uint64(300_000), h.Token.TotalSupply(h.Ctx).Uint64())

	mints := h.Ledger.CallsTo("Mint")
	require.Len(t, mints, 1)
	require.Equal(t, dest, mints[0].Account)
	h.requireEffectsCommitted()
	h.requireInvariants()

	// executed proposals cannot be replayed
	_, _, err = h.Keeper.MintM(h.Ctx, minter, id)
	require.ErrorIs(t, err, types.ErrProposalMismatch)
}

func TestProposeMintReplacesProposal(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()
	h.updateCollateral(minter, 1_000_000)

	first, err := h.Keeper.ProposeMint(h.Ctx, minter, sdkmath.NewUint(1), datagen.GenRandomAddress())
	require.NoError(t, err)
	second, err := h.Keeper.ProposeMint(h.Ctx, minter, sdkmath.NewUint(2), datagen.GenRandomAddress())
	require.NoError(t, err)
	require.Equal(t, first+1, second)
	require.Equal(t, second, h.Keeper.MintNonce(h.Ctx))

	h.AdvanceTime(time.Duration(registrartypes.DefaultMintDelay) * time.Second)
	_, _, err = h.Keeper.MintM(h.Ctx, minter, first)
	require.ErrorIs(t, err, types.ErrProposalMismatch)
}

func TestCancelMint(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()
	h.updateCollateral(minter, 1_000_000)
	validator := h.validators[0].Address

	id, err := h.Keeper.ProposeMint(h.Ctx, minter, sdkmath.NewUint(10), datagen.GenRandomAddress())
	require.NoError(t, err)

	require.ErrorIs(t, h.Keeper.CancelMint(h.Ctx, datagen.GenRandomAddress(), minter, id), types.ErrNotApprovedValidator)
	require.ErrorIs(t, h.Keeper.CancelMint(h.Ctx, validator, minter, 0), types.ErrProposalMismatch)
	require.ErrorIs(t, h.Keeper.CancelMint(h.Ctx, validator, minter, id+1), types.ErrProposalMismatch)

	require.NoError(t, h.Keeper.CancelMint(h.Ctx, validator, minter, id))
	_, found := h.Keeper.GetMintProposal(h.Ctx, minter)
	require.False(t, found)
	require.Len(t, events.OfType(h.Ctx, types.EventTypeMintCanceled), 1)

	require.ErrorIs(t, h.Keeper.CancelMint(h.Ctx, validator, minter, id), types.ErrProposalMismatch)
}

func TestFreezeMinter(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()
	h.updateCollateral(minter, 1_000_000)
	validator := h.validators[0].Address

	_, err := h.Keeper.FreezeMinter(h.Ctx, datagen.GenRandomAddress(), minter)
	require.ErrorIs(t, err, types.ErrNotApprovedValidator)
	_, err = h.Keeper.FreezeMinter(h.Ctx, validator, datagen.GenRandomAddress())
	require.ErrorIs(t, err, types.ErrNotActiveMinter)

	id, err := h.Keeper.ProposeMint(h.Ctx, minter, sdkmath.NewUint(10), datagen.GenRandomAddress())
	require.NoError(t, err)

	frozenUntil, err := h.Keeper.FreezeMinter(h.Ctx, validator, minter)
	require.NoError(t, err)
	require.Equal(t, h.Now()+uint64(registrartypes.DefaultMinterFreezeTime), frozenUntil)
	require.True(t, h.Keeper.IsFrozenMinter(h.Ctx, minter))

	_, err = h.Keeper.ProposeMint(h.Ctx, minter, sdkmath.NewUint(10), datagen.GenRandomAddress())
	require.ErrorIs(t, err, types.ErrFrozenMinter)
	h.AdvanceTime(time.Duration(registrartypes.DefaultMintDelay) * time.Second)
	_, _, err = h.Keeper.MintM(h.Ctx, minter, id)
	require.ErrorIs(t, err, types.ErrFrozenMinter)

	// retrievals and collateral updates stay available while frozen
	h.updateCollateral(minter, 1_000_000)
	_, err = h.Keeper.ProposeRetrieval(h.Ctx, minter, sdkmath.NewUint(1))
	require.NoError(t, err)

	h.SetTime(time.Unix(int64(frozenUntil), 0).UTC())
	require.False(t, h.Keeper.IsFrozenMinter(h.Ctx, minter))
	_, err = h.Keeper.ProposeMint(h.Ctx, minter, sdkmath.NewUint(10), datagen.GenRandomAddress())
	require.NoError(t, err)
}
