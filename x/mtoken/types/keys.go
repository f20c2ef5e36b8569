package types

import "cosmossdk.io/collections"

const (
	// ModuleName is the name of the M token module. It is also the module
	// account that mints and burns M.
	ModuleName = "mtoken"

	// StoreKey is the default store key for mtoken
	StoreKey = ModuleName
)

var (
	ParamsKey     = collections.NewPrefix(1) // key prefix for the parameters
	CheckpointKey = collections.NewPrefix(2) // key prefix for the latest supply checkpoint
)
