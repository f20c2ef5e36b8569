package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

func (k Keeper) activeMinter(ctx context.Context, minter sdk.AccAddress) (types.MinterState, error) {
	s, err := k.getMinter(ctx, minter)
	if err != nil {
		return types.MinterState{}, err
	}
	if !s.IsActive {
		return types.MinterState{}, types.ErrNotActiveMinter.Wrap(minter.String())
	}
	return s, nil
}

func (k Keeper) unfrozenActiveMinter(ctx context.Context, minter sdk.AccAddress) (types.MinterState, error) {
	s, err := k.activeMinter(ctx, minter)
	if err != nil {
		return types.MinterState{}, err
	}
	if blockTime(ctx) < s.FrozenUntilTimestamp {
		return types.MinterState{}, types.ErrFrozenMinter.Wrapf("%s is frozen until %d", minter, s.FrozenUntilTimestamp)
	}
	return s, nil
}

func (k Keeper) requireApprovedValidator(ctx context.Context, validator sdk.AccAddress) error {
	if !k.registrar.IsApprovedValidator(ctx, validator) {
		return types.ErrNotApprovedValidator.Wrap(validator.String())
	}
	return nil
}

// checkCollateralized fails when s would owe more than its collateral allows
// after taking on additional owed M.
func (k Keeper) checkCollateralized(ctx context.Context, s types.MinterState, additional sdkmath.Uint) error {
	maxAllowed, err := k.maxAllowedActiveOwedM(ctx, s)
	if err != nil {
		return err
	}
	owed, err := k.activeOwedM(ctx, s)
	if err != nil {
		return err
	}
	final := owed.Add(additional)
	if final.GT(maxAllowed) {
		return types.ErrUndercollateralized.Wrapf("owed M %s exceeds max allowed %s", final, maxAllowed)
	}
	return nil
}

// ActivateMinter lets an approved minter start minting. Activating an active
// minter does nothing.
func (k Keeper) ActivateMinter(ctx context.Context, caller, minter sdk.AccAddress) error {
	if !k.registrar.IsApprovedMinter(ctx, minter) {
		return types.ErrNotApprovedMinter.Wrap(minter.String())
	}
	s, err := k.getMinter(ctx, minter)
	if err != nil {
		return err
	}
	if s.IsDeactivated {
		return types.ErrAlreadyDeactivated.Wrap(minter.String())
	}
	if s.IsActive {
		return nil
	}

	s.IsActive = true
	if err := k.setMinter(ctx, minter, s); err != nil {
		return err
	}

	k.Logger(ctx).Info("minter activated", "minter", minter.String())
	k.emitEvent(ctx, types.EventTypeMinterActivated,
		sdk.NewAttribute(types.AttributeKeyMinter, minter.String()),
		sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
	)
	return nil
}

// DeactivateMinter retires a minter whose approval was revoked. Its active
// owed M, including any missed update penalty, becomes inactive owed M that
// no longer accrues. Collateral, proposal and pending retrievals are dropped.
func (k Keeper) DeactivateMinter(goCtx context.Context, caller, minter sdk.AccAddress) (sdkmath.Uint, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	s, err := k.activeMinter(ctx, minter)
	if err != nil {
		return sdkmath.Uint{}, err
	}
	if k.registrar.IsApprovedMinter(ctx, minter) {
		return sdkmath.Uint{}, types.ErrStillApprovedMinter.Wrap(minter.String())
	}

	if err := k.imposeMissedUpdatesPenalty(ctx, minter, &s); err != nil {
		return sdkmath.Uint{}, err
	}
	inactiveOwedM, err := k.activeOwedM(ctx, s)
	if err != nil {
		return sdkmath.Uint{}, err
	}

	if err := k.subTotalPrincipal(ctx, s.PrincipalOfActiveOwedM); err != nil {
		return sdkmath.Uint{}, err
	}
	if err := k.addTotalInactive(ctx, inactiveOwedM); err != nil {
		return sdkmath.Uint{}, err
	}
	total, err := mgtypes.SafeAdd(s.InactiveOwedM, inactiveOwedM, mgtypes.MaxUint240())
	if err != nil {
		return sdkmath.Uint{}, err
	}
	if err := k.setMinter(ctx, minter, types.Deactivated(total)); err != nil {
		return sdkmath.Uint{}, err
	}
	if err := k.mintProposals.Remove(ctx, minter); err != nil {
		return sdkmath.Uint{}, err
	}
	if err := k.pendingRetrievals.Clear(ctx, collections.NewPrefixedPairRange[[]byte, uint64](minter)); err != nil {
		return sdkmath.Uint{}, err
	}

	k.Logger(ctx).Info("minter deactivated", "minter", minter.String(), "inactive_owed_m", inactiveOwedM.String())
	k.emitEvent(ctx, types.EventTypeMinterDeactivated,
		sdk.NewAttribute(types.AttributeKeyMinter, minter.String()),
		sdk.NewAttribute(types.AttributeKeyInactiveOwedM, inactiveOwedM.String()),
		sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
	)

	if _, err := k.UpdateIndex(types.WithEffectsCommitted(ctx)); err != nil {
		return sdkmath.Uint{}, err
	}
	return inactiveOwedM, nil
}

// FreezeMinter stops minter from proposing and executing mints for the
// registry's freeze time. Freezing again extends the window from now.
func (k Keeper) FreezeMinter(ctx context.Context, validator, minter sdk.AccAddress) (uint64, error) {
	if err := k.requireApprovedValidator(ctx, validator); err != nil {
		return 0, err
	}
	s, err := k.activeMinter(ctx, minter)
	if err != nil {
		return 0, err
	}

	s.FrozenUntilTimestamp = blockTime(ctx) + uint64(k.registrar.MinterFreezeTime(ctx))
	if err := k.setMinter(ctx, minter, s); err != nil {
		return 0, err
	}

	k.Logger(ctx).Info("minter frozen", "minter", minter.String(), "validator", validator.String(), "until", s.FrozenUntilTimestamp)
	k.emitEvent(ctx, types.EventTypeMinterFrozen,
		sdk.NewAttribute(types.AttributeKeyMinter, minter.String()),
		sdk.NewAttribute(types.AttributeKeyValidator, validator.String()),
		sdk.NewAttribute(types.AttributeKeyFrozenUntil, u64(s.FrozenUntilTimestamp)),
	)
	return s.FrozenUntilTimestamp, nil
}
