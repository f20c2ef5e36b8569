package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

// InitGenesis initializes the keeper state from a provided initial genesis state.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}

	if err := k.indexState.Set(ctx, gs.IndexState); err != nil {
		return err
	}
	if err := k.mintNonce.Set(ctx, gs.MintNonce); err != nil {
		return err
	}
	if err := k.retrievalNonce.Set(ctx, gs.RetrievalNonce); err != nil {
		return err
	}
	if err := k.totalPrincipalOfActiveOwedM.Set(ctx, gs.TotalPrincipalOfActiveOwedM); err != nil {
		return err
	}
	if err := k.totalInactiveOwedM.Set(ctx, gs.TotalInactiveOwedM); err != nil {
		return err
	}

	for _, m := range gs.Minters {
		addr := sdk.MustAccAddressFromBech32(m.Address)
		if err := k.minters.Set(ctx, addr, m.State); err != nil {
			return err
		}
	}
	for _, p := range gs.MintProposals {
		addr := sdk.MustAccAddressFromBech32(p.Minter)
		if err := k.mintProposals.Set(ctx, addr, p.Proposal); err != nil {
			return err
		}
	}
	for _, r := range gs.PendingRetrievals {
		addr := sdk.MustAccAddressFromBech32(r.Minter)
		if err := k.pendingRetrievals.Set(ctx, collections.Join([]byte(addr), r.RetrievalID), r.Amount); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis returns the keeper state into an exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	minters, err := k.exportMinters(ctx)
	if err != nil {
		return nil, err
	}
	proposals, err := k.exportMintProposals(ctx)
	if err != nil {
		return nil, err
	}
	retrievals, err := k.exportRetrievals(ctx)
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{
		IndexState:                  k.GetIndexState(ctx),
		MintNonce:                   k.MintNonce(ctx),
		RetrievalNonce:              k.RetrievalNonce(ctx),
		TotalPrincipalOfActiveOwedM: k.TotalPrincipalOfActiveOwedM(ctx),
		TotalInactiveOwedM:          k.TotalInactiveOwedM(ctx),
		Minters:                     minters,
		MintProposals:               proposals,
		PendingRetrievals:           retrievals,
	}, nil
}

func (k Keeper) exportMinters(ctx context.Context) ([]types.GenesisMinter, error) {
	entries := make([]types.GenesisMinter, 0)
	err := k.minters.Walk(ctx, nil, func(addr []byte, s types.MinterState) (bool, error) {
		entries = append(entries, types.GenesisMinter{
			Address: sdk.AccAddress(addr).String(),
			State:   s,
		})
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export minters: %w", err)
	}
	return entries, nil
}

func (k Keeper) exportMintProposals(ctx context.Context) ([]types.GenesisMintProposal, error) {
	entries := make([]types.GenesisMintProposal, 0)
	err := k.mintProposals.Walk(ctx, nil, func(addr []byte, p types.MintProposal) (bool, error) {
		entries = append(entries, types.GenesisMintProposal{
			Minter:   sdk.AccAddress(addr).String(),
			Proposal: p,
		})
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export mint proposals: %w", err)
	}
	return entries, nil
}

func (k Keeper) exportRetrievals(ctx context.Context) ([]types.GenesisRetrieval, error) {
	entries := make([]types.GenesisRetrieval, 0)
	err := k.pendingRetrievals.Walk(ctx, nil, func(key collections.Pair[[]byte, uint64], amount sdkmath.Uint) (bool, error) {
		entries = append(entries, types.GenesisRetrieval{
			Minter:      sdk.AccAddress(key.K1()).String(),
			RetrievalID: key.K2(),
			Amount:      amount,
		})
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export pending retrievals: %w", err)
	}
	return entries, nil
}
