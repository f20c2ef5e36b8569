package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

// GetMinterState returns the accounting record of minter. Unknown minters
// read as never activated.
func (k Keeper) GetMinterState(ctx context.Context, minter sdk.AccAddress) types.MinterState {
	s, err := k.getMinter(ctx, minter)
	if err != nil {
		panic(err)
	}
	return s
}

func (k Keeper) IsActiveMinter(ctx context.Context, minter sdk.AccAddress) bool {
	return k.GetMinterState(ctx, minter).IsActive
}

func (k Keeper) IsDeactivatedMinter(ctx context.Context, minter sdk.AccAddress) bool {
	return k.GetMinterState(ctx, minter).IsDeactivated
}

func (k Keeper) IsFrozenMinter(ctx context.Context, minter sdk.AccAddress) bool {
	return blockTime(ctx) < k.GetMinterState(ctx, minter).FrozenUntilTimestamp
}

// CollateralExpiryOf returns the time from which the last collateral update
// of minter no longer counts.
func (k Keeper) CollateralExpiryOf(ctx context.Context, minter sdk.AccAddress) uint64 {
	s := k.GetMinterState(ctx, minter)
	return collateralExpiry(s)
}

func collateralExpiry(s types.MinterState) uint64 {
	return s.UpdateTimestamp + uint64(s.LastUpdateInterval)
}

// CollateralOf returns the collateral of minter net of pending retrievals, or
// zero once the last update has expired.
func (k Keeper) CollateralOf(ctx context.Context, minter sdk.AccAddress) sdkmath.Uint {
	return collateralOf(k.GetMinterState(ctx, minter), blockTime(ctx))
}

func collateralOf(s types.MinterState, now uint64) sdkmath.Uint {
	if now >= collateralExpiry(s) {
		return sdkmath.ZeroUint()
	}
	return mgtypes.SaturatingSub(s.Collateral, s.TotalPendingRetrievals)
}

// MaxAllowedActiveOwedMOf returns the most M an active minter may owe given
// its collateral and the mint ratio. Inactive minters may owe nothing.
func (k Keeper) MaxAllowedActiveOwedMOf(ctx context.Context, minter sdk.AccAddress) (sdkmath.Uint, error) {
	return k.maxAllowedActiveOwedM(ctx, k.GetMinterState(ctx, minter))
}

func (k Keeper) maxAllowedActiveOwedM(ctx context.Context, s types.MinterState) (sdkmath.Uint, error) {
	if !s.IsActive {
		return sdkmath.ZeroUint(), nil
	}
	return mgtypes.ApplyBasisPoints(collateralOf(s, blockTime(ctx)), k.registrar.MintRatio(ctx))
}

// ActiveOwedMOf returns the present value of the principal owed by minter,
// rounded up.
func (k Keeper) ActiveOwedMOf(ctx context.Context, minter sdk.AccAddress) (sdkmath.Uint, error) {
	return k.activeOwedM(ctx, k.GetMinterState(ctx, minter))
}

func (k Keeper) activeOwedM(ctx context.Context, s types.MinterState) (sdkmath.Uint, error) {
	return mgtypes.PresentFromPrincipal(s.PrincipalOfActiveOwedM, k.CurrentIndex(ctx), true)
}

func (k Keeper) PrincipalOfActiveOwedMOf(ctx context.Context, minter sdk.AccAddress) sdkmath.Uint {
	return k.GetMinterState(ctx, minter).PrincipalOfActiveOwedM
}

func (k Keeper) InactiveOwedMOf(ctx context.Context, minter sdk.AccAddress) sdkmath.Uint {
	return k.GetMinterState(ctx, minter).InactiveOwedM
}

// PenaltyForMissedCollateralUpdates returns the penalty minter would be
// charged for missed updates if it were assessed now.
func (k Keeper) PenaltyForMissedCollateralUpdates(ctx context.Context, minter sdk.AccAddress) (sdkmath.Uint, error) {
	s := k.GetMinterState(ctx, minter)
	p, err := k.missedUpdatesPenalty(ctx, s)
	if err != nil {
		return sdkmath.Uint{}, err
	}
	return p.penalty, nil
}

// GetMintProposal returns the outstanding proposal of minter, if any.
func (k Keeper) GetMintProposal(ctx context.Context, minter sdk.AccAddress) (types.MintProposal, bool) {
	p, err := k.mintProposals.Get(ctx, minter)
	if errors.Is(err, collections.ErrNotFound) {
		return types.MintProposal{}, false
	}
	if err != nil {
		panic(err)
	}
	return p, true
}

// PendingCollateralRetrievalOf returns the amount reserved by the given
// retrieval, or zero once it is resolved.
func (k Keeper) PendingCollateralRetrievalOf(ctx context.Context, minter sdk.AccAddress, retrievalID uint64) sdkmath.Uint {
	amount, err := k.pendingRetrievals.Get(ctx, collections.Join([]byte(minter), retrievalID))
	if errors.Is(err, collections.ErrNotFound) {
		return sdkmath.ZeroUint()
	}
	if err != nil {
		panic(err)
	}
	return amount
}

func (k Keeper) MintNonce(ctx context.Context) uint64 {
	return k.nonce(ctx, k.mintNonce)
}

func (k Keeper) RetrievalNonce(ctx context.Context) uint64 {
	return k.nonce(ctx, k.retrievalNonce)
}

func (k Keeper) nonce(ctx context.Context, item collections.Item[uint64]) uint64 {
	n, err := item.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return 0
	}
	if err != nil {
		panic(err)
	}
	return n
}
