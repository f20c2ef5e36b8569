package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

// ProposeRetrieval reserves amount of the minter's collateral for retrieval.
// The reservation stands until validators attest a collateral update that
// names the returned id.
func (k Keeper) ProposeRetrieval(ctx context.Context, minter sdk.AccAddress, amount sdkmath.Uint) (uint64, error) {
	s, err := k.activeMinter(ctx, minter)
	if err != nil {
		return 0, err
	}
	if amount.IsZero() {
		return 0, types.ErrZeroAmount
	}

	pending, err := mgtypes.SafeAdd(s.TotalPendingRetrievals, amount, mgtypes.MaxUint240())
	if err != nil {
		return 0, err
	}
	if pending.GT(s.Collateral) {
		return 0, types.ErrRetrievalExceedsCollateral.Wrapf("pending %s exceeds collateral %s", pending, s.Collateral)
	}
	s.TotalPendingRetrievals = pending
	if err := k.checkCollateralized(ctx, s, sdkmath.ZeroUint()); err != nil {
		return 0, err
	}

	id, err := nextNonce(ctx, k.retrievalNonce)
	if err != nil {
		return 0, err
	}
	if err := k.pendingRetrievals.Set(ctx, collections.Join([]byte(minter), id), amount); err != nil {
		return 0, err
	}
	if err := k.setMinter(ctx, minter, s); err != nil {
		return 0, err
	}

	k.emitEvent(ctx, types.EventTypeRetrievalCreated,
		sdk.NewAttribute(types.AttributeKeyRetrievalID, u64(id)),
		sdk.NewAttribute(types.AttributeKeyMinter, minter.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	)
	return id, nil
}
