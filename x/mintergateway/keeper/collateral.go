package keeper

import (
	"context"
	"encoding/hex"
	"errors"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

// UpdateCollateral records the collateral attested by a validator quorum and
// returns the timestamp it is recorded at, the oldest among the counted
// signatures.
//
// Missed update intervals are charged before the new interval is stored, and
// the minter is charged again if the new collateral does not cover its owed M.
func (k Keeper) UpdateCollateral(goCtx context.Context, minter sdk.AccAddress, att CollateralAttestation) (uint64, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	s, err := k.activeMinter(ctx, minter)
	if err != nil {
		return 0, err
	}
	minTimestamp, err := k.VerifyQuorum(ctx, minter, att)
	if err != nil {
		return 0, err
	}
	collateral, err := mgtypes.SafeUint240(att.Collateral)
	if err != nil {
		return 0, err
	}

	if err := k.imposeMissedUpdatesPenalty(ctx, minter, &s); err != nil {
		return 0, err
	}
	resolved, err := k.resolvePendingRetrievals(ctx, minter, &s, att.RetrievalIDs)
	if err != nil {
		return 0, err
	}

	if minTimestamp < s.UpdateTimestamp {
		return 0, types.ErrStaleUpdate.Wrapf("timestamp %d is before %d", minTimestamp, s.UpdateTimestamp)
	}
	s.Collateral = collateral
	s.UpdateTimestamp = minTimestamp
	s.LastUpdateInterval = k.registrar.UpdateCollateralInterval(ctx)

	if err := k.imposeUndercollateralizedPenalty(ctx, minter, &s); err != nil {
		return 0, err
	}
	if err := k.setMinter(ctx, minter, s); err != nil {
		return 0, err
	}

	k.emitEvent(ctx, types.EventTypeCollateralUpdated,
		sdk.NewAttribute(types.AttributeKeyMinter, minter.String()),
		sdk.NewAttribute(types.AttributeKeyCollateral, collateral.String()),
		sdk.NewAttribute(types.AttributeKeyResolvedAmount, resolved.String()),
		sdk.NewAttribute(types.AttributeKeyMetadataHash, hex.EncodeToString(att.MetadataHash)),
		sdk.NewAttribute(types.AttributeKeyTimestamp, u64(minTimestamp)),
	)

	if _, err := k.UpdateIndex(types.WithEffectsCommitted(ctx)); err != nil {
		return 0, err
	}
	return minTimestamp, nil
}

// resolvePendingRetrievals deletes the named retrievals of minter and
// releases their amounts from its pending total. Unknown or already resolved
// ids count as zero.
func (k Keeper) resolvePendingRetrievals(ctx context.Context, minter sdk.AccAddress, s *types.MinterState, ids []uint64) (sdkmath.Uint, error) {
	total := sdkmath.ZeroUint()
	for _, id := range ids {
		key := collections.Join([]byte(minter), id)
		amount, err := k.pendingRetrievals.Get(ctx, key)
		if errors.Is(err, collections.ErrNotFound) {
			continue
		}
		if err != nil {
			return sdkmath.Uint{}, err
		}
		if err := k.pendingRetrievals.Remove(ctx, key); err != nil {
			return sdkmath.Uint{}, err
		}
		total = total.Add(amount)
	}

	pending, err := mgtypes.SafeSub(s.TotalPendingRetrievals, total)
	if err != nil {
		return sdkmath.Uint{}, err
	}
	s.TotalPendingRetrievals = pending
	return total, nil
}
