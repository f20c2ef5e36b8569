package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

// BurnM repays at most maxAmount of the M owed by minter with M burned from
// payer, and returns the principal and present amounts repaid. Active
// minters are charged for missed updates first; deactivated minters repay
// their inactive owed M.
func (k Keeper) BurnM(goCtx context.Context, payer, minter sdk.AccAddress, maxAmount sdkmath.Uint) (sdkmath.Uint, sdkmath.Uint, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if maxAmount.IsZero() {
		return sdkmath.Uint{}, sdkmath.Uint{}, types.ErrZeroAmount
	}
	s, err := k.getMinter(ctx, minter)
	if err != nil {
		return sdkmath.Uint{}, sdkmath.Uint{}, err
	}

	principal, amount := sdkmath.ZeroUint(), sdkmath.ZeroUint()
	if s.IsActive {
		if err := k.imposeMissedUpdatesPenalty(ctx, minter, &s); err != nil {
			return sdkmath.Uint{}, sdkmath.Uint{}, err
		}
		index := k.CurrentIndex(ctx)
		maxPrincipal, err := mgtypes.PrincipalFromPresent(maxAmount, index, false)
		if err != nil {
			return sdkmath.Uint{}, sdkmath.Uint{}, err
		}
		principal = sdkmath.MinUint(s.PrincipalOfActiveOwedM, maxPrincipal)
		if amount, err = mgtypes.PresentFromPrincipal(principal, index, true); err != nil {
			return sdkmath.Uint{}, sdkmath.Uint{}, err
		}
		s.PrincipalOfActiveOwedM = s.PrincipalOfActiveOwedM.Sub(principal)
		if err := k.subTotalPrincipal(ctx, principal); err != nil {
			return sdkmath.Uint{}, sdkmath.Uint{}, err
		}
	} else {
		amount = sdkmath.MinUint(s.InactiveOwedM, maxAmount)
		s.InactiveOwedM = s.InactiveOwedM.Sub(amount)
		if err := k.subTotalInactive(ctx, amount); err != nil {
			return sdkmath.Uint{}, sdkmath.Uint{}, err
		}
	}
	if s.IsActive || s.IsDeactivated {
		if err := k.setMinter(ctx, minter, s); err != nil {
			return sdkmath.Uint{}, sdkmath.Uint{}, err
		}
	}

	k.emitEvent(ctx, types.EventTypeBurnExecuted,
		sdk.NewAttribute(types.AttributeKeyMinter, minter.String()),
		sdk.NewAttribute(types.AttributeKeyPrincipalAmount, principal.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(types.AttributeKeyPayer, payer.String()),
	)

	ctx = types.WithEffectsCommitted(ctx)
	if err := k.ledger.Burn(ctx, payer, amount); err != nil {
		return sdkmath.Uint{}, sdkmath.Uint{}, err
	}
	types.RecordBurned(amount)
	if _, err := k.UpdateIndex(ctx); err != nil {
		return sdkmath.Uint{}, sdkmath.Uint{}, err
	}
	return principal, amount, nil
}
