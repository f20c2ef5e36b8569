package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintgate-labs/mintgate/x/registrar/types"
)

// SetParams sets the x/registrar module parameters.
func (k Keeper) SetParams(ctx context.Context, p types.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return k.params.Set(ctx, p)
}

// GetParams returns the current x/registrar module parameters.
func (k Keeper) GetParams(ctx context.Context) (p types.Params) {
	p, err := k.params.Get(ctx)
	if err != nil {
		panic(err)
	}
	return p
}

func (k Keeper) UpdateCollateralInterval(ctx context.Context) uint32 {
	return k.GetParams(ctx).UpdateCollateralInterval
}

func (k Keeper) UpdateCollateralValidatorThreshold(ctx context.Context) uint32 {
	return k.GetParams(ctx).UpdateCollateralValidatorThreshold
}

func (k Keeper) MintRatio(ctx context.Context) uint32 {
	return k.GetParams(ctx).MintRatio
}

func (k Keeper) MintDelay(ctx context.Context) uint32 {
	return k.GetParams(ctx).MintDelay
}

func (k Keeper) MintTTL(ctx context.Context) uint32 {
	return k.GetParams(ctx).MintTTL
}

func (k Keeper) MinterFreezeTime(ctx context.Context) uint32 {
	return k.GetParams(ctx).MinterFreezeTime
}

func (k Keeper) PenaltyRate(ctx context.Context) uint32 {
	return k.GetParams(ctx).PenaltyRate
}

func (k Keeper) RateModel(ctx context.Context) string {
	return k.GetParams(ctx).RateModel
}

func (k Keeper) BaseMinterRate(ctx context.Context) uint32 {
	return k.GetParams(ctx).BaseMinterRate
}

func (k Keeper) MaxMinterRate(ctx context.Context) uint32 {
	return k.GetParams(ctx).MaxMinterRate
}

// Treasury is the account receiving excess owed M.
func (k Keeper) Treasury(ctx context.Context) sdk.AccAddress {
	return k.GetParams(ctx).TreasuryAddress()
}
