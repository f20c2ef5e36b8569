package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

type missedUpdates struct {
	intervals      uint64
	penalizedUntil uint64
	penalty        sdkmath.Uint
}

// missedUpdatesPenalty computes the penalty for the update intervals s missed
// since its last update or last penalization, whichever is later. The
// deadline uses the interval in force at the last update; further missed
// intervals are counted with the current one.
func (k Keeper) missedUpdatesPenalty(ctx context.Context, s types.MinterState) (missedUpdates, error) {
	none := missedUpdates{penalizedUntil: s.PenalizedUntilTimestamp, penalty: sdkmath.ZeroUint()}
	if s.LastUpdateInterval == 0 {
		return none, nil
	}

	now := blockTime(ctx)
	deadline := mgtypes.MaxU64(s.UpdateTimestamp, s.PenalizedUntilTimestamp) + uint64(s.LastUpdateInterval)
	if now <= deadline {
		return none, nil
	}

	interval := uint64(k.registrar.UpdateCollateralInterval(ctx))
	missed := uint64(1)
	if interval > 0 {
		missed += (now - deadline) / interval
	}

	owed, err := k.activeOwedM(ctx, s)
	if err != nil {
		return missedUpdates{}, err
	}
	penalizedUntil := deadline + (missed-1)*interval
	if owed.IsZero() {
		return missedUpdates{intervals: missed, penalizedUntil: penalizedUntil, penalty: sdkmath.ZeroUint()}, nil
	}
	penalty, err := mgtypes.ApplyBasisPoints(owed.MulUint64(missed), k.registrar.PenaltyRate(ctx))
	if err != nil {
		return missedUpdates{}, err
	}

	return missedUpdates{
		intervals:      missed,
		penalizedUntil: penalizedUntil,
		penalty:        penalty,
	}, nil
}

// imposeMissedUpdatesPenalty charges s for missed collateral updates and
// moves its penalized-until timestamp past the charged window.
func (k Keeper) imposeMissedUpdatesPenalty(ctx context.Context, minter sdk.AccAddress, s *types.MinterState) error {
	m, err := k.missedUpdatesPenalty(ctx, *s)
	if err != nil {
		return err
	}
	if m.intervals == 0 {
		return nil
	}
	s.PenalizedUntilTimestamp = m.penalizedUntil
	return k.imposePenalty(ctx, minter, s, m.penalty, types.PenaltyKindMissedUpdates,
		sdk.NewAttribute(types.AttributeKeyMissedIntervals, u64(m.intervals)),
	)
}

// imposeUndercollateralizedPenalty charges s on the owed M exceeding what its
// collateral allows.
func (k Keeper) imposeUndercollateralizedPenalty(ctx context.Context, minter sdk.AccAddress, s *types.MinterState) error {
	maxAllowed, err := k.maxAllowedActiveOwedM(ctx, *s)
	if err != nil {
		return err
	}
	owed, err := k.activeOwedM(ctx, *s)
	if err != nil {
		return err
	}
	if owed.LTE(maxAllowed) {
		return nil
	}
	penalty, err := mgtypes.ApplyBasisPoints(owed.Sub(maxAllowed), k.registrar.PenaltyRate(ctx))
	if err != nil {
		return err
	}
	return k.imposePenalty(ctx, minter, s, penalty, types.PenaltyKindUndercollateral)
}

// imposePenalty adds penalty to the active principal of s, rounded up.
func (k Keeper) imposePenalty(
	ctx context.Context,
	minter sdk.AccAddress,
	s *types.MinterState,
	penalty sdkmath.Uint,
	kind string,
	attrs ...sdk.Attribute,
) error {
	if penalty.IsZero() {
		return nil
	}
	principal, err := mgtypes.PrincipalFromPresent(penalty, k.CurrentIndex(ctx), true)
	if err != nil {
		return err
	}
	if s.PrincipalOfActiveOwedM, err = mgtypes.SafeAdd(s.PrincipalOfActiveOwedM, principal, mgtypes.MaxUint112()); err != nil {
		return err
	}
	if err := k.addTotalPrincipal(ctx, principal); err != nil {
		return err
	}

	k.Logger(ctx).Debug("penalty imposed", "minter", minter.String(), "kind", kind, "amount", penalty.String())
	types.RecordPenalty(kind, penalty)
	k.emitEvent(ctx, types.EventTypePenaltyImposed, append([]sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyMinter, minter.String()),
		sdk.NewAttribute(types.AttributeKeyPenaltyKind, kind),
		sdk.NewAttribute(types.AttributeKeyAmount, penalty.String()),
		sdk.NewAttribute(types.AttributeKeyPrincipalAmount, principal.String()),
	}, attrs...)...)
	return nil
}
