package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/registrar module sentinel errors
var (
	ErrInvalidParams   = errorsmod.Register(ModuleName, 1100, "invalid registrar parameters")
	ErrUnauthorized    = errorsmod.Register(ModuleName, 1101, "signer is not the registrar authority")
	ErrInvalidAddress  = errorsmod.Register(ModuleName, 1102, "invalid account address")
	ErrAlreadyApproved = errorsmod.Register(ModuleName, 1103, "account is already approved")
	ErrNotApproved     = errorsmod.Register(ModuleName, 1104, "account is not approved")
	ErrInvalidGenesis  = errorsmod.Register(ModuleName, 1105, "invalid registrar genesis state")
)
