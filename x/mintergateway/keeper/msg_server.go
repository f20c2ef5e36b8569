package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the mintergateway message
// handlers for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) MsgServer {
	return &msgServer{Keeper: keeper}
}

// MsgServer is the set of operations exposed to minters, validators and
// anyone else.
type MsgServer interface {
	UpdateCollateral(context.Context, *types.MsgUpdateCollateral) (*types.MsgUpdateCollateralResponse, error)
	ProposeRetrieval(context.Context, *types.MsgProposeRetrieval) (*types.MsgProposeRetrievalResponse, error)
	ProposeMint(context.Context, *types.MsgProposeMint) (*types.MsgProposeMintResponse, error)
	MintM(context.Context, *types.MsgMintM) (*types.MsgMintMResponse, error)
	BurnM(context.Context, *types.MsgBurnM) (*types.MsgBurnMResponse, error)
	CancelMint(context.Context, *types.MsgCancelMint) (*types.MsgCancelMintResponse, error)
	FreezeMinter(context.Context, *types.MsgFreezeMinter) (*types.MsgFreezeMinterResponse, error)
	ActivateMinter(context.Context, *types.MsgActivateMinter) (*types.MsgActivateMinterResponse, error)
	DeactivateMinter(context.Context, *types.MsgDeactivateMinter) (*types.MsgDeactivateMinterResponse, error)
	UpdateIndex(context.Context, *types.MsgUpdateIndex) (*types.MsgUpdateIndexResponse, error)
}

// atomic runs fn on a cached context and writes the cache back only if fn
// succeeds, so a failed operation leaves no state or events behind.
func atomic(goCtx context.Context, fn func(ctx sdk.Context) error) error {
	ctx := sdk.UnwrapSDKContext(goCtx)
	cacheCtx, writeCache := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	writeCache()
	return nil
}

type signedMsg interface {
	ValidateBasic() error
	GetSigners() []sdk.AccAddress
}

// authorize validates msg and requires it to be signed by its acting
// account, the one its handler spends from or acts for.
func authorize(goCtx context.Context, msg signedMsg) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	signer, ok := types.SignerFromContext(goCtx)
	if !ok {
		return types.ErrUnauthorizedSigner.Wrap("no signer")
	}
	if want := msg.GetSigners()[0]; !signer.Equals(want) {
		return types.ErrUnauthorizedSigner.Wrapf("signed by %s, expected %s", signer, want)
	}
	return nil
}

func parseAddresses(addrs ...string) ([]sdk.AccAddress, error) {
	out := make([]sdk.AccAddress, len(addrs))
	for i, a := range addrs {
		addr, err := sdk.AccAddressFromBech32(a)
		if err != nil {
			return nil, types.ErrInvalidAddress.Wrapf("%s: %s", a, err)
		}
		out[i] = addr
	}
	return out, nil
}

// UpdateCollateral records a validator attested collateral value.
func (ms msgServer) UpdateCollateral(goCtx context.Context, req *types.MsgUpdateCollateral) (*types.MsgUpdateCollateralResponse, error) {
	if err := authorize(goCtx, req); err != nil {
		return nil, err
	}
	minter, err := sdk.AccAddressFromBech32(req.Minter)
	if err != nil {
		return nil, err
	}
	validators, err := parseAddresses(req.Validators...)
	if err != nil {
		return nil, err
	}

	var minTimestamp uint64
	err = atomic(goCtx, func(ctx sdk.Context) (err error) {
		minTimestamp, err = ms.Keeper.UpdateCollateral(ctx, minter, CollateralAttestation{
			Collateral:   req.Collateral,
			RetrievalIDs: req.RetrievalIDs,
			MetadataHash: req.MetadataHash,
			Validators:   validators,
			Timestamps:   req.Timestamps,
			Signatures:   req.Signatures,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgUpdateCollateralResponse{MinTimestamp: minTimestamp}, nil
}

// ProposeRetrieval reserves collateral for retrieval.
func (ms msgServer) ProposeRetrieval(goCtx context.Context, req *types.MsgProposeRetrieval) (*types.MsgProposeRetrievalResponse, error) {
	if err := authorize(goCtx, req); err != nil {
		return nil, err
	}
	minter, err := sdk.AccAddressFromBech32(req.Minter)
	if err != nil {
		return nil, err
	}

	var id uint64
	err = atomic(goCtx, func(ctx sdk.Context) (err error) {
		id, err = ms.Keeper.ProposeRetrieval(ctx, minter, req.Amount)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgProposeRetrievalResponse{RetrievalID: id}, nil
}

// ProposeMint replaces the minter's mint proposal.
func (ms msgServer) ProposeMint(goCtx context.Context, req *types.MsgProposeMint) (*types.MsgProposeMintResponse, error) {
	if err := authorize(goCtx, req); err != nil {
		return nil, err
	}
	addrs, err := parseAddresses(req.Minter, req.Destination)
	if err != nil {
		return nil, err
	}

	var id uint64
	err = atomic(goCtx, func(ctx sdk.Context) (err error) {
		id, err = ms.Keeper.ProposeMint(ctx, addrs[0], req.Amount, addrs[1])
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgProposeMintResponse{MintID: id}, nil
}

// MintM executes the minter's mint proposal.
func (ms msgServer) MintM(goCtx context.Context, req *types.MsgMintM) (*types.MsgMintMResponse, error) {
	if err := authorize(goCtx, req); err != nil {
		return nil, err
	}
	minter, err := sdk.AccAddressFromBech32(req.Minter)
	if err != nil {
		return nil, err
	}

	resp := &types.MsgMintMResponse{}
	err = atomic(goCtx, func(ctx sdk.Context) (err error) {
		resp.PrincipalAmount, resp.Amount, err = ms.Keeper.MintM(ctx, minter, req.MintID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// BurnM repays owed M of a minter with the payer's M.
func (ms msgServer) BurnM(goCtx context.Context, req *types.MsgBurnM) (*types.MsgBurnMResponse, error) {
	if err := authorize(goCtx, req); err != nil {
		return nil, err
	}
	addrs, err := parseAddresses(req.Payer, req.Minter)
	if err != nil {
		return nil, err
	}

	resp := &types.MsgBurnMResponse{}
	err = atomic(goCtx, func(ctx sdk.Context) (err error) {
		resp.PrincipalAmount, resp.Amount, err = ms.Keeper.BurnM(ctx, addrs[0], addrs[1], req.MaxAmount)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CancelMint drops a minter's mint proposal on behalf of a validator.
func (ms msgServer) CancelMint(goCtx context.Context, req *types.MsgCancelMint) (*types.MsgCancelMintResponse, error) {
	if err := authorize(goCtx, req); err != nil {
		return nil, err
	}
	addrs, err := parseAddresses(req.Validator, req.Minter)
	if err != nil {
		return nil, err
	}

	err = atomic(goCtx, func(ctx sdk.Context) error {
		return ms.Keeper.CancelMint(ctx, addrs[0], addrs[1], req.MintID)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgCancelMintResponse{}, nil
}

// FreezeMinter freezes a minter on behalf of a validator.
func (ms msgServer) FreezeMinter(goCtx context.Context, req *types.MsgFreezeMinter) (*types.MsgFreezeMinterResponse, error) {
	if err := authorize(goCtx, req); err != nil {
		return nil, err
	}
	addrs, err := parseAddresses(req.Validator, req.Minter)
	if err != nil {
		return nil, err
	}

	var frozenUntil uint64
	err = atomic(goCtx, func(ctx sdk.Context) (err error) {
		frozenUntil, err = ms.Keeper.FreezeMinter(ctx, addrs[0], addrs[1])
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgFreezeMinterResponse{FrozenUntil: frozenUntil}, nil
}

// ActivateMinter activates an approved minter.
func (ms msgServer) ActivateMinter(goCtx context.Context, req *types.MsgActivateMinter) (*types.MsgActivateMinterResponse, error) {
	if err := authorize(goCtx, req); err != nil {
		return nil, err
	}
	addrs, err := parseAddresses(req.Caller, req.Minter)
	if err != nil {
		return nil, err
	}

	err = atomic(goCtx, func(ctx sdk.Context) error {
		return ms.Keeper.ActivateMinter(ctx, addrs[0], addrs[1])
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgActivateMinterResponse{}, nil
}

// DeactivateMinter retires a minter whose approval was revoked.
func (ms msgServer) DeactivateMinter(goCtx context.Context, req *types.MsgDeactivateMinter) (*types.MsgDeactivateMinterResponse, error) {
	if err := authorize(goCtx, req); err != nil {
		return nil, err
	}
	addrs, err := parseAddresses(req.Caller, req.Minter)
	if err != nil {
		return nil, err
	}

	resp := &types.MsgDeactivateMinterResponse{}
	err = atomic(goCtx, func(ctx sdk.Context) (err error) {
		resp.InactiveOwedM, err = ms.Keeper.DeactivateMinter(ctx, addrs[0], addrs[1])
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateIndex advances the continuous index.
func (ms msgServer) UpdateIndex(goCtx context.Context, req *types.MsgUpdateIndex) (*types.MsgUpdateIndexResponse, error) {
	if err := authorize(goCtx, req); err != nil {
		return nil, err
	}

	resp := &types.MsgUpdateIndexResponse{}
	err := atomic(goCtx, func(ctx sdk.Context) (err error) {
		resp.Index, err = ms.Keeper.UpdateIndex(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
