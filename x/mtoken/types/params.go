package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultDenom is the base denomination of M.
const DefaultDenom = "umtoken"

// Params configures the M token ledger.
type Params struct {
	Denom string `json:"denom"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{Denom: DefaultDenom}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.Denom); err != nil {
		return ErrInvalidParams.Wrapf("denom %q: %s", p.Denom, err)
	}
	return nil
}
