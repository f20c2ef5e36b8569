package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintgate-labs/mintgate/x/registrar/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the registrar message handlers
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) MsgServer {
	return &msgServer{Keeper: keeper}
}

// MsgServer is the set of governance operations on the registrar.
type MsgServer interface {
	UpdateParams(context.Context, *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error)
	UpdateMinterApproval(context.Context, *types.MsgUpdateApproval) (*types.MsgUpdateApprovalResponse, error)
	UpdateValidatorApproval(context.Context, *types.MsgUpdateApproval) (*types.MsgUpdateApprovalResponse, error)
}

func (ms msgServer) checkAuthority(authority string) error {
	if ms.authority != authority {
		return errorsmod.Wrapf(types.ErrUnauthorized, "expected %s, got %s", ms.authority, authority)
	}
	return nil
}

// UpdateParams updates the params
func (ms msgServer) UpdateParams(goCtx context.Context, req *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := ms.checkAuthority(req.Authority); err != nil {
		return nil, err
	}
	if err := req.Params.Validate(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.SetParams(ctx, req.Params); err != nil {
		return nil, err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeParamsUpdated,
		sdk.NewAttribute(types.AttributeKeyAuthority, req.Authority),
	))

	return &types.MsgUpdateParamsResponse{}, nil
}

// UpdateMinterApproval adds or removes a minter from the approved list.
func (ms msgServer) UpdateMinterApproval(goCtx context.Context, req *types.MsgUpdateApproval) (*types.MsgUpdateApprovalResponse, error) {
	if err := ms.checkAuthority(req.Authority); err != nil {
		return nil, err
	}
	addr, err := sdk.AccAddressFromBech32(req.Account)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	if req.Approved {
		err = ms.ApproveMinter(goCtx, addr)
	} else {
		err = ms.RevokeMinter(goCtx, addr)
	}
	if err != nil {
		return nil, err
	}
	return &types.MsgUpdateApprovalResponse{}, nil
}

// UpdateValidatorApproval adds or removes a validator from the approved list.
func (ms msgServer) UpdateValidatorApproval(goCtx context.Context, req *types.MsgUpdateApproval) (*types.MsgUpdateApprovalResponse, error) {
	if err := ms.checkAuthority(req.Authority); err != nil {
		return nil, err
	}
	addr, err := sdk.AccAddressFromBech32(req.Account)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	if req.Approved {
		err = ms.ApproveValidator(goCtx, addr)
	} else {
		err = ms.RevokeValidator(goCtx, addr)
	}
	if err != nil {
		return nil, err
	}
	return &types.MsgUpdateApprovalResponse{}, nil
}
