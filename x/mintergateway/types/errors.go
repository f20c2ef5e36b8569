package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/mintergateway module sentinel errors
var (
	// authorization
	ErrNotActiveMinter      = errorsmod.Register(ModuleName, 1100, "minter is not active")
	ErrNotApprovedValidator = errorsmod.Register(ModuleName, 1101, "validator is not approved")
	ErrFrozenMinter         = errorsmod.Register(ModuleName, 1102, "minter is frozen")

	// input validation
	ErrArrayLengthMismatch          = errorsmod.Register(ModuleName, 1103, "validators, timestamps and signatures have different lengths")
	ErrUnsortedOrDuplicateValidator = errorsmod.Register(ModuleName, 1104, "validators are not sorted in strictly ascending order")
	ErrFutureTimestamp              = errorsmod.Register(ModuleName, 1105, "signature timestamp is in the future")
	ErrZeroAmount                   = errorsmod.Register(ModuleName, 1106, "amount must be positive")
	ErrInvalidDestination           = errorsmod.Register(ModuleName, 1107, "invalid mint destination")
	ErrInvalidMetadataHash          = errorsmod.Register(ModuleName, 1108, "metadata hash must be 32 bytes")

	// quorum
	ErrInsufficientQuorum = errorsmod.Register(ModuleName, 1109, "not enough valid validator signatures")

	// temporal
	ErrStaleUpdate          = errorsmod.Register(ModuleName, 1110, "collateral update is older than the recorded one")
	ErrProposalNotYetActive = errorsmod.Register(ModuleName, 1111, "mint proposal is not active yet")
	ErrProposalExpired      = errorsmod.Register(ModuleName, 1112, "mint proposal has expired")

	// solvency
	ErrUndercollateralized        = errorsmod.Register(ModuleName, 1113, "minter would be undercollateralized")
	ErrRetrievalExceedsCollateral = errorsmod.Register(ModuleName, 1114, "pending retrievals exceed collateral")

	// identity
	ErrProposalMismatch = errorsmod.Register(ModuleName, 1115, "mint proposal id does not match")

	// lifecycle
	ErrNotApprovedMinter   = errorsmod.Register(ModuleName, 1116, "minter is not approved")
	ErrAlreadyDeactivated  = errorsmod.Register(ModuleName, 1117, "minter is deactivated")
	ErrStillApprovedMinter = errorsmod.Register(ModuleName, 1118, "minter is still approved")

	ErrInvalidGenesis = errorsmod.Register(ModuleName, 1119, "invalid mintergateway genesis state")
	ErrInvalidAddress = errorsmod.Register(ModuleName, 1120, "invalid account address")

	ErrUnauthorizedSigner = errorsmod.Register(ModuleName, 1121, "message is not signed by its acting account")
)
