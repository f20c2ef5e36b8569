package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

// GetIndexState returns the latest index checkpoint. A fresh store starts at
// index 1 with rate 0 at the current block time.
func (k Keeper) GetIndexState(ctx context.Context) types.IndexState {
	s, err := k.indexState.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.NewIndexState(blockTime(ctx))
	}
	if err != nil {
		panic(err)
	}
	return s
}

// CurrentIndex compounds the latest index at the latest rate up to the block
// time. The result never exceeds 2^128-1.
func (k Keeper) CurrentIndex(ctx context.Context) sdkmath.Uint {
	s := k.GetIndexState(ctx)
	now := blockTime(ctx)
	var dt uint64
	if now > s.LatestUpdateTimestamp {
		dt = now - s.LatestUpdateTimestamp
	}
	return mgtypes.CurrentIndex(s.LatestIndex, s.LatestRate, dt)
}

// Rate reads the rate of the model selected by the registrar. A missing
// model, an error or a panic in the model all read as 0.
func (k Keeper) Rate(ctx context.Context) (rate uint32) {
	name := k.registrar.RateModel(ctx)
	model, ok := k.rateModels.Get(name)
	if !ok {
		k.Logger(ctx).Error("unknown rate model, using zero rate", "model", name)
		return 0
	}

	defer func() {
		if r := recover(); r != nil {
			k.Logger(ctx).Error("rate model panicked, using zero rate", "model", name, "panic", r)
			rate = 0
		}
	}()

	rate, err := model.Rate(ctx)
	if err != nil {
		k.Logger(ctx).Error("failed to read rate, using zero rate", "model", name, "err", err)
		return 0
	}
	return rate
}

// UpdateIndex mints any excess owed M to the treasury, checkpoints the
// current index at the current rate and lets the token ledger follow.
//
// The excess is measured with the index in force before the checkpoint and
// minted once the checkpoint is stored, so the ledger is only called after
// the gateway's own writes.
func (k Keeper) UpdateIndex(goCtx context.Context) (sdkmath.Uint, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	excess, err := k.ExcessOwedM(ctx)
	if err != nil {
		return sdkmath.Uint{}, err
	}

	now := blockTime(ctx)
	rate := k.Rate(ctx)
	prev := k.GetIndexState(ctx)
	index := k.CurrentIndex(ctx)

	next := types.IndexState{
		LatestIndex:           index,
		LatestRate:            rate,
		LatestUpdateTimestamp: now,
	}
	changed := prev.LatestRate != rate || prev.LatestUpdateTimestamp != now
	if changed {
		if err := k.indexState.Set(ctx, next); err != nil {
			return sdkmath.Uint{}, err
		}
	}

	ctx = types.WithEffectsCommitted(ctx)

	if !excess.IsZero() {
		treasury := k.registrar.Treasury(ctx)
		if err := k.ledger.Mint(ctx, treasury, excess); err != nil {
			return sdkmath.Uint{}, err
		}
		k.emitEvent(ctx, types.EventTypeExcessOwedMinted,
			sdk.NewAttribute(types.AttributeKeyTreasury, treasury.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, excess.String()),
		)
		types.RecordExcessMinted(excess)
	}

	if changed {
		k.emitEvent(ctx, types.EventTypeIndexUpdated,
			sdk.NewAttribute(types.AttributeKeyIndex, index.String()),
			sdk.NewAttribute(types.AttributeKeyRate, fmt.Sprintf("%d", rate)),
		)
		types.RecordIndexState(next)
	} else {
		index = prev.LatestIndex
	}

	// synced even when the index is unchanged, so mints and burns later in
	// the block reach the ledger checkpoint
	if err := k.ledger.UpdateIndex(ctx); err != nil {
		return sdkmath.Uint{}, err
	}
	return index, nil
}

// TotalPrincipalOfActiveOwedM returns the principal owed by all active
// minters.
func (k Keeper) TotalPrincipalOfActiveOwedM(ctx context.Context) sdkmath.Uint {
	v, err := k.getUint(ctx, k.totalPrincipalOfActiveOwedM)
	if err != nil {
		panic(err)
	}
	return v
}

// TotalActiveOwedM returns the present value of the total active principal,
// rounded down.
func (k Keeper) TotalActiveOwedM(ctx context.Context) (sdkmath.Uint, error) {
	return mgtypes.PresentFromPrincipal(k.TotalPrincipalOfActiveOwedM(ctx), k.CurrentIndex(ctx), false)
}

// TotalInactiveOwedM returns the M owed by all deactivated minters.
func (k Keeper) TotalInactiveOwedM(ctx context.Context) sdkmath.Uint {
	v, err := k.getUint(ctx, k.totalInactiveOwedM)
	if err != nil {
		panic(err)
	}
	return v
}

// TotalOwedM returns the M owed by active and deactivated minters.
func (k Keeper) TotalOwedM(ctx context.Context) (sdkmath.Uint, error) {
	active, err := k.TotalActiveOwedM(ctx)
	if err != nil {
		return sdkmath.Uint{}, err
	}
	return mgtypes.SafeAdd(active, k.TotalInactiveOwedM(ctx), mgtypes.MaxUint240())
}

// ExcessOwedM returns how much owed M is not yet backed by the M supply.
func (k Keeper) ExcessOwedM(ctx context.Context) (sdkmath.Uint, error) {
	owed, err := k.TotalOwedM(ctx)
	if err != nil {
		return sdkmath.Uint{}, err
	}
	return mgtypes.SaturatingSub(owed, k.ledger.TotalSupply(ctx)), nil
}
