package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "registrar"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

var (
	ParamsKey                   = collections.NewPrefix(1) // key prefix for the parameters
	ApprovedMintersKeyPrefix    = collections.NewPrefix(2) // key prefix for (minter_addr) set
	ApprovedValidatorsKeyPrefix = collections.NewPrefix(3) // key prefix for (validator_addr) set
)
