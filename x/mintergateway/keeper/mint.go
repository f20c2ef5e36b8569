package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

// ProposeMint replaces the outstanding mint proposal of minter and returns
// its id. The proposal can be executed once the mint delay has passed and
// until the mint TTL runs out.
func (k Keeper) ProposeMint(ctx context.Context, minter sdk.AccAddress, amount sdkmath.Uint, destination sdk.AccAddress) (uint64, error) {
	s, err := k.unfrozenActiveMinter(ctx, minter)
	if err != nil {
		return 0, err
	}
	if amount.IsZero() {
		return 0, types.ErrZeroAmount
	}
	if err := sdk.VerifyAddressFormat(destination); err != nil {
		return 0, types.ErrInvalidDestination.Wrap(err.Error())
	}
	if _, err := mgtypes.SafeUint240(amount); err != nil {
		return 0, err
	}
	if err := k.checkCollateralized(ctx, s, amount); err != nil {
		return 0, err
	}

	id, err := nextNonce(ctx, k.mintNonce)
	if err != nil {
		return 0, err
	}
	proposal := types.MintProposal{
		ID:          id,
		CreatedAt:   blockTime(ctx),
		Destination: destination.String(),
		Amount:      amount,
	}
	if err := k.mintProposals.Set(ctx, minter, proposal); err != nil {
		return 0, err
	}

	k.emitEvent(ctx, types.EventTypeMintProposed,
		sdk.NewAttribute(types.AttributeKeyMintID, u64(id)),
		sdk.NewAttribute(types.AttributeKeyMinter, minter.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(types.AttributeKeyDestination, proposal.Destination),
	)
	return id, nil
}

// MintM executes the outstanding proposal of minter and returns the
// principal and present amounts it added to the minter's owed M.
func (k Keeper) MintM(goCtx context.Context, minter sdk.AccAddress, mintID uint64) (sdkmath.Uint, sdkmath.Uint, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	s, err := k.unfrozenActiveMinter(ctx, minter)
	if err != nil {
		return sdkmath.Uint{}, sdkmath.Uint{}, err
	}
	proposal, found := k.GetMintProposal(ctx, minter)
	if !found || proposal.ID != mintID {
		return sdkmath.Uint{}, sdkmath.Uint{}, types.ErrProposalMismatch.Wrapf("mint id %d", mintID)
	}

	now := blockTime(ctx)
	mintDelay, mintTTL := k.registrar.MintDelay(ctx), k.registrar.MintTTL(ctx)
	if activeAt := proposal.ActiveAt(mintDelay); now < activeAt {
		return sdkmath.Uint{}, sdkmath.Uint{}, types.ErrProposalNotYetActive.Wrapf("active at %d", activeAt)
	}
	if expiresAt := proposal.ExpiresAt(mintDelay, mintTTL); now > expiresAt {
		return sdkmath.Uint{}, sdkmath.Uint{}, types.ErrProposalExpired.Wrapf("expired at %d", expiresAt)
	}
	if err := k.checkCollateralized(ctx, s, proposal.Amount); err != nil {
		return sdkmath.Uint{}, sdkmath.Uint{}, err
	}
	destination, err := sdk.AccAddressFromBech32(proposal.Destination)
	if err != nil {
		return sdkmath.Uint{}, sdkmath.Uint{}, types.ErrInvalidDestination.Wrap(err.Error())
	}

	if err := k.mintProposals.Remove(ctx, minter); err != nil {
		return sdkmath.Uint{}, sdkmath.Uint{}, err
	}
	principal, err := mgtypes.PrincipalFromPresent(proposal.Amount, k.CurrentIndex(ctx), true)
	if err != nil {
		return sdkmath.Uint{}, sdkmath.Uint{}, err
	}
	if s.PrincipalOfActiveOwedM, err = mgtypes.SafeAdd(s.PrincipalOfActiveOwedM, principal, mgtypes.MaxUint112()); err != nil {
		return sdkmath.Uint{}, sdkmath.Uint{}, err
	}
	if err := k.addTotalPrincipal(ctx, principal); err != nil {
		return sdkmath.Uint{}, sdkmath.Uint{}, err
	}
	if err := k.setMinter(ctx, minter, s); err != nil {
		return sdkmath.Uint{}, sdkmath.Uint{}, err
	}

	k.emitEvent(ctx, types.EventTypeMintExecuted,
		sdk.NewAttribute(types.AttributeKeyMintID, u64(mintID)),
		sdk.NewAttribute(types.AttributeKeyMinter, minter.String()),
		sdk.NewAttribute(types.AttributeKeyPrincipalAmount, principal.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, proposal.Amount.String()),
	)

	ctx = types.WithEffectsCommitted(ctx)
	if err := k.ledger.Mint(ctx, destination, proposal.Amount); err != nil {
		return sdkmath.Uint{}, sdkmath.Uint{}, err
	}
	types.RecordMinted(proposal.Amount)
	if _, err := k.UpdateIndex(ctx); err != nil {
		return sdkmath.Uint{}, sdkmath.Uint{}, err
	}
	return principal, proposal.Amount, nil
}

// CancelMint lets an approved validator drop the outstanding proposal of
// minter.
func (k Keeper) CancelMint(ctx context.Context, validator, minter sdk.AccAddress, mintID uint64) error {
	if err := k.requireApprovedValidator(ctx, validator); err != nil {
		return err
	}
	proposal, found := k.GetMintProposal(ctx, minter)
	if mintID == 0 || !found || proposal.ID != mintID {
		return types.ErrProposalMismatch.Wrapf("mint id %d", mintID)
	}
	if err := k.mintProposals.Remove(ctx, minter); err != nil {
		return err
	}

	k.emitEvent(ctx, types.EventTypeMintCanceled,
		sdk.NewAttribute(types.AttributeKeyMintID, u64(mintID)),
		sdk.NewAttribute(types.AttributeKeyMinter, minter.String()),
		sdk.NewAttribute(types.AttributeKeyValidator, validator.String()),
	)
	return nil
}
