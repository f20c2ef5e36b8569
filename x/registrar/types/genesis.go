package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
)

// GenesisState is the registrar state exported at genesis.
type GenesisState struct {
	Params             Params   `json:"params"`
	ApprovedMinters    []string `json:"approved_minters"`
	ApprovedValidators []string `json:"approved_validators"`
}

// bech32Entry lets address lists go through ValidateEntries.
type bech32Entry string

func (e bech32Entry) Validate() error {
	if _, err := sdk.AccAddressFromBech32(string(e)); err != nil {
		return ErrInvalidAddress.Wrapf("%s: %s", string(e), err)
	}
	return nil
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:             DefaultParams(),
		ApprovedMinters:    []string{},
		ApprovedValidators: []string{},
	}
}

// NewGenesis creates a new GenesisState instance
func NewGenesis(params Params, minters, validators []string) *GenesisState {
	return &GenesisState{
		Params:             params,
		ApprovedMinters:    minters,
		ApprovedValidators: validators,
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if err := validateAddressList(gs.ApprovedMinters); err != nil {
		return ErrInvalidGenesis.Wrapf("approved minters: %s", err)
	}
	if err := validateAddressList(gs.ApprovedValidators); err != nil {
		return ErrInvalidGenesis.Wrapf("approved validators: %s", err)
	}
	return nil
}

func validateAddressList(addrs []string) error {
	entries := make([]bech32Entry, len(addrs))
	for i, a := range addrs {
		entries[i] = bech32Entry(a)
	}
	return mgtypes.ValidateEntries(entries, func(e bech32Entry) string { return string(e) })
}
