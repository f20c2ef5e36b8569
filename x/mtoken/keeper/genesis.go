package keeper

import (
	"context"

	"github.com/mintgate-labs/mintgate/x/mtoken/types"
)

// InitGenesis initializes the x/mtoken store with data from the genesis state.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, gs.Params); err != nil {
		return err
	}
	return k.checkpoint.Set(ctx, gs.Checkpoint)
}

// ExportGenesis returns a x/mtoken GenesisState for the given context.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:     k.GetParams(ctx),
		Checkpoint: k.GetCheckpoint(ctx),
	}
}
