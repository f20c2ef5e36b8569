package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgUpdateParams replaces every registrar parameter.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// MsgUpdateApproval adds or removes an account from an approved list.
type MsgUpdateApproval struct {
	Authority string `json:"authority"`
	Account   string `json:"account"`
	Approved  bool   `json:"approved"`
}

type MsgUpdateParamsResponse struct{}

type MsgUpdateApprovalResponse struct{}

func (m *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	return m.Params.Validate()
}

func (m *MsgUpdateApproval) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Account); err != nil {
		return ErrInvalidAddress.Wrapf("account: %s", err)
	}
	return nil
}
