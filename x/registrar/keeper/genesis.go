package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintgate-labs/mintgate/x/registrar/types"
)

// InitGenesis performs stateful validations and initializes the keeper state from a provided initial genesis state.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := k.SetParams(ctx, gs.Params); err != nil {
		return err
	}

	for _, m := range gs.ApprovedMinters {
		addr, err := sdk.AccAddressFromBech32(m)
		if err != nil {
			return err
		}
		if err := k.approvedMinters.Set(ctx, addr); err != nil {
			return err
		}
	}

	for _, v := range gs.ApprovedValidators {
		addr, err := sdk.AccAddressFromBech32(v)
		if err != nil {
			return err
		}
		if err := k.approvedValidators.Set(ctx, addr); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the keeper state into a exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	minters, err := k.ApprovedMinters(ctx)
	if err != nil {
		return nil, err
	}
	validators, err := k.ApprovedValidators(ctx)
	if err != nil {
		return nil, err
	}

	return types.NewGenesis(k.GetParams(ctx), toBech32(minters), toBech32(validators)), nil
}

func toBech32(addrs []sdk.AccAddress) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}
