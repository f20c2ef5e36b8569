package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintgate-labs/mintgate/x/ratemodel"
)

// TokenLedger is the M token the gateway mints and burns owed M through.
type TokenLedger interface {
	Mint(ctx context.Context, recipient sdk.AccAddress, amount sdkmath.Uint) error
	Burn(ctx context.Context, payer sdk.AccAddress, amount sdkmath.Uint) error
	TotalSupply(ctx context.Context) sdkmath.Uint
	UpdateIndex(ctx context.Context) error
}

// RegistrarKeeper exposes the governance parameters and approval lists.
type RegistrarKeeper interface {
	IsApprovedMinter(ctx context.Context, minter sdk.AccAddress) bool
	IsApprovedValidator(ctx context.Context, validator sdk.AccAddress) bool

	UpdateCollateralInterval(ctx context.Context) uint32
	UpdateCollateralValidatorThreshold(ctx context.Context) uint32
	MintRatio(ctx context.Context) uint32
	MintDelay(ctx context.Context) uint32
	MintTTL(ctx context.Context) uint32
	MinterFreezeTime(ctx context.Context) uint32
	PenaltyRate(ctx context.Context) uint32
	RateModel(ctx context.Context) string
	Treasury(ctx context.Context) sdk.AccAddress
}

// RateModelRegistry resolves the rate model named by the registrar.
type RateModelRegistry interface {
	Get(name string) (ratemodel.RateModel, bool)
}

// SignatureVerifier checks a validator signature over a digest. Malformed
// signatures are reported as invalid rather than as errors.
type SignatureVerifier interface {
	IsValidSignature(signer, digest, sig []byte) bool
}
