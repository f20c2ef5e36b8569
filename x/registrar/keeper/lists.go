package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintgate-labs/mintgate/x/registrar/types"
)

func (k Keeper) IsApprovedMinter(ctx context.Context, minter sdk.AccAddress) bool {
	ok, err := k.approvedMinters.Has(ctx, minter)
	if err != nil {
		panic(err)
	}
	return ok
}

func (k Keeper) IsApprovedValidator(ctx context.Context, validator sdk.AccAddress) bool {
	ok, err := k.approvedValidators.Has(ctx, validator)
	if err != nil {
		panic(err)
	}
	return ok
}

func (k Keeper) ApproveMinter(ctx context.Context, minter sdk.AccAddress) error {
	if k.IsApprovedMinter(ctx, minter) {
		return types.ErrAlreadyApproved.Wrapf("minter %s", minter)
	}
	if err := k.approvedMinters.Set(ctx, minter); err != nil {
		return err
	}
	k.emitListEvent(ctx, types.EventTypeMinterApproved, minter)
	return nil
}

func (k Keeper) RevokeMinter(ctx context.Context, minter sdk.AccAddress) error {
	if !k.IsApprovedMinter(ctx, minter) {
		return types.ErrNotApproved.Wrapf("minter %s", minter)
	}
	if err := k.approvedMinters.Remove(ctx, minter); err != nil {
		return err
	}
	k.emitListEvent(ctx, types.EventTypeMinterRevoked, minter)
	return nil
}

func (k Keeper) ApproveValidator(ctx context.Context, validator sdk.AccAddress) error {
	if k.IsApprovedValidator(ctx, validator) {
		return types.ErrAlreadyApproved.Wrapf("validator %s", validator)
	}
	if err := k.approvedValidators.Set(ctx, validator); err != nil {
		return err
	}
	k.emitListEvent(ctx, types.EventTypeValidatorApproved, validator)
	return nil
}

func (k Keeper) RevokeValidator(ctx context.Context, validator sdk.AccAddress) error {
	if !k.IsApprovedValidator(ctx, validator) {
		return types.ErrNotApproved.Wrapf("validator %s", validator)
	}
	if err := k.approvedValidators.Remove(ctx, validator); err != nil {
		return err
	}
	k.emitListEvent(ctx, types.EventTypeValidatorRevoked, validator)
	return nil
}

// ApprovedMinters returns every approved minter in key order.
func (k Keeper) ApprovedMinters(ctx context.Context) ([]sdk.AccAddress, error) {
	return walkAddresses(ctx, k.approvedMinters)
}

// ApprovedValidators returns every approved validator in key order.
func (k Keeper) ApprovedValidators(ctx context.Context) ([]sdk.AccAddress, error) {
	return walkAddresses(ctx, k.approvedValidators)
}

func walkAddresses(ctx context.Context, set collections.KeySet[[]byte]) ([]sdk.AccAddress, error) {
	addrs := make([]sdk.AccAddress, 0)
	err := set.Walk(ctx, nil, func(key []byte) (bool, error) {
		addrs = append(addrs, sdk.AccAddress(key))
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return addrs, nil
}

func (k Keeper) emitListEvent(ctx context.Context, eventType string, account sdk.AccAddress) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
		),
	)
	k.Logger(sdkCtx).Info("approved list updated", "event", eventType, "account", account.String())
}
