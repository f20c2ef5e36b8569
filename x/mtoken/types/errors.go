package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/mtoken module sentinel errors
var (
	ErrInvalidParams  = errorsmod.Register(ModuleName, 1100, "invalid mtoken parameters")
	ErrInvalidAmount  = errorsmod.Register(ModuleName, 1101, "invalid M amount")
	ErrInvalidAccount = errorsmod.Register(ModuleName, 1102, "invalid M account")
)
