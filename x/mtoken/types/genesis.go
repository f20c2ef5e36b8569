package types

import (
	sdkmath "cosmossdk.io/math"
)

// Checkpoint records the M supply observed at the latest index update.
type Checkpoint struct {
	Supply    sdkmath.Uint `json:"supply"`
	Timestamp uint64       `json:"timestamp"`
}

// GenesisState is the mtoken state exported at genesis.
type GenesisState struct {
	Params     Params     `json:"params"`
	Checkpoint Checkpoint `json:"checkpoint"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Checkpoint: Checkpoint{Supply: sdkmath.ZeroUint()},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if gs.Checkpoint.Supply.IsNil() {
		return ErrInvalidAmount.Wrap("checkpoint supply must be set")
	}
	return gs.Params.Validate()
}
