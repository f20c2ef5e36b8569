package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
)

const (
	// MaxMintRatio caps the mint ratio at 650%.
	MaxMintRatio uint32 = 65_000
	// MaxRate caps every yearly rate at 400%.
	MaxRate uint32 = 40_000

	// TreasuryName derives the default treasury module account.
	TreasuryName = "mintgate_treasury"

	// MinterRateModelName selects the registry driven minter rate model.
	MinterRateModelName = "minter"
	// ZeroRateModelName selects a rate model that disables accrual.
	ZeroRateModelName = "zero"
)

var (
	DefaultUpdateCollateralInterval           uint32 = 86_400 // 1 day
	DefaultUpdateCollateralValidatorThreshold uint32 = 1
	DefaultMintRatio                          uint32 = 9_000 // 90%
	DefaultMintDelay                          uint32 = 3_600
	DefaultMintTTL                            uint32 = 86_400
	DefaultMinterFreezeTime                   uint32 = 21_600
	DefaultPenaltyRate                        uint32 = 100 // 1%
	DefaultBaseMinterRate                     uint32 = 400 // 4%
	DefaultMaxMinterRate                      uint32 = 1_000
)

// Params are the protocol parameters read by the minter gateway on every
// operation. Interval and time fields are in seconds, rates in basis points.
type Params struct {
	UpdateCollateralInterval           uint32 `json:"update_collateral_interval"`
	UpdateCollateralValidatorThreshold uint32 `json:"update_collateral_validator_threshold"`
	MintRatio                          uint32 `json:"mint_ratio"`
	MintDelay                          uint32 `json:"mint_delay"`
	MintTTL                            uint32 `json:"mint_ttl"`
	MinterFreezeTime                   uint32 `json:"minter_freeze_time"`
	PenaltyRate                        uint32 `json:"penalty_rate"`
	RateModel                          string `json:"rate_model"`
	BaseMinterRate                     uint32 `json:"base_minter_rate"`
	MaxMinterRate                      uint32 `json:"max_minter_rate"`
	Treasury                           string `json:"treasury"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		UpdateCollateralInterval:           DefaultUpdateCollateralInterval,
		UpdateCollateralValidatorThreshold: DefaultUpdateCollateralValidatorThreshold,
		MintRatio:                          DefaultMintRatio,
		MintDelay:                          DefaultMintDelay,
		MintTTL:                            DefaultMintTTL,
		MinterFreezeTime:                   DefaultMinterFreezeTime,
		PenaltyRate:                        DefaultPenaltyRate,
		RateModel:                          MinterRateModelName,
		BaseMinterRate:                     DefaultBaseMinterRate,
		MaxMinterRate:                      DefaultMaxMinterRate,
		Treasury:                           authtypes.NewModuleAddress(TreasuryName).String(),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.MintRatio > MaxMintRatio {
		return ErrInvalidParams.Wrapf("mint ratio %d exceeds %d", p.MintRatio, MaxMintRatio)
	}
	if p.PenaltyRate > uint32(mgtypes.BpsScaledOne) {
		return ErrInvalidParams.Wrapf("penalty rate %d exceeds 100%%", p.PenaltyRate)
	}
	if p.BaseMinterRate > MaxRate {
		return ErrInvalidParams.Wrapf("base minter rate %d exceeds %d", p.BaseMinterRate, MaxRate)
	}
	if p.MaxMinterRate > MaxRate {
		return ErrInvalidParams.Wrapf("max minter rate %d exceeds %d", p.MaxMinterRate, MaxRate)
	}
	if p.MintTTL == 0 {
		return ErrInvalidParams.Wrap("mint ttl must be positive")
	}
	if len(p.RateModel) == 0 {
		return ErrInvalidParams.Wrap("rate model must be set")
	}
	if _, err := sdk.AccAddressFromBech32(p.Treasury); err != nil {
		return errorsmod.Wrapf(ErrInvalidParams, "invalid treasury %q: %s", p.Treasury, err)
	}
	return nil
}

// TreasuryAddress returns the decoded treasury account.
func (p Params) TreasuryAddress() sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(p.Treasury)
}
