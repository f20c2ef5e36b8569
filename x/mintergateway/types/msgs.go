package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgUpdateCollateral is signed by an active minter and carries the validator
// attestations of its off-chain collateral.
type MsgUpdateCollateral struct {
	Minter       string       `json:"minter"`
	Collateral   sdkmath.Uint `json:"collateral"`
	RetrievalIDs []uint64     `json:"retrieval_ids"`
	MetadataHash []byte       `json:"metadata_hash"`
	Validators   []string     `json:"validators"`
	Timestamps   []uint64     `json:"timestamps"`
	Signatures   [][]byte     `json:"signatures"`
}

type MsgUpdateCollateralResponse struct {
	MinTimestamp uint64 `json:"min_timestamp"`
}

// MsgProposeRetrieval reserves collateral the minter wants to take back.
type MsgProposeRetrieval struct {
	Minter string       `json:"minter"`
	Amount sdkmath.Uint `json:"amount"`
}

type MsgProposeRetrievalResponse struct {
	RetrievalID uint64 `json:"retrieval_id"`
}

// MsgProposeMint replaces the minter's outstanding mint proposal.
type MsgProposeMint struct {
	Minter      string       `json:"minter"`
	Amount      sdkmath.Uint `json:"amount"`
	Destination string       `json:"destination"`
}

type MsgProposeMintResponse struct {
	MintID uint64 `json:"mint_id"`
}

// MsgMintM executes the minter's outstanding proposal.
type MsgMintM struct {
	Minter string `json:"minter"`
	MintID uint64 `json:"mint_id"`
}

type MsgMintMResponse struct {
	PrincipalAmount sdkmath.Uint `json:"principal_amount"`
	Amount          sdkmath.Uint `json:"amount"`
}

// MsgBurnM repays up to MaxAmount of the minter's owed M from the payer's
// balance.
type MsgBurnM struct {
	Payer     string       `json:"payer"`
	Minter    string       `json:"minter"`
	MaxAmount sdkmath.Uint `json:"max_amount"`
}

type MsgBurnMResponse struct {
	PrincipalAmount sdkmath.Uint `json:"principal_amount"`
	Amount          sdkmath.Uint `json:"amount"`
}

// MsgCancelMint is signed by an approved validator.
type MsgCancelMint struct {
	Validator string `json:"validator"`
	Minter    string `json:"minter"`
	MintID    uint64 `json:"mint_id"`
}

type MsgCancelMintResponse struct{}

// MsgFreezeMinter is signed by an approved validator.
type MsgFreezeMinter struct {
	Validator string `json:"validator"`
	Minter    string `json:"minter"`
}

type MsgFreezeMinterResponse struct {
	FrozenUntil uint64 `json:"frozen_until"`
}

// MsgActivateMinter can be sent by anyone once the minter is approved.
type MsgActivateMinter struct {
	Caller string `json:"caller"`
	Minter string `json:"minter"`
}

type MsgActivateMinterResponse struct{}

// MsgDeactivateMinter can be sent by anyone once the minter approval is
// revoked.
type MsgDeactivateMinter struct {
	Caller string `json:"caller"`
	Minter string `json:"minter"`
}

type MsgDeactivateMinterResponse struct {
	InactiveOwedM sdkmath.Uint `json:"inactive_owed_m"`
}

// MsgUpdateIndex advances the continuous index.
type MsgUpdateIndex struct {
	Caller string `json:"caller"`
}

type MsgUpdateIndexResponse struct {
	Index sdkmath.Uint `json:"index"`
}

func validateAddress(field, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return ErrInvalidAddress.Wrapf("%s: %s", field, err)
	}
	return nil
}

func validatePositive(amount sdkmath.Uint) error {
	if amount.IsNil() || amount.IsZero() {
		return ErrZeroAmount
	}
	return nil
}

func (m *MsgUpdateCollateral) ValidateBasic() error {
	if err := validateAddress("minter", m.Minter); err != nil {
		return err
	}
	if m.Collateral.IsNil() {
		return ErrZeroAmount.Wrap("collateral is not set")
	}
	if len(m.MetadataHash) != MetadataHashLen {
		return ErrInvalidMetadataHash.Wrapf("got %d bytes", len(m.MetadataHash))
	}
	if len(m.Validators) != len(m.Timestamps) || len(m.Validators) != len(m.Signatures) {
		return ErrArrayLengthMismatch.Wrapf("%d validators, %d timestamps, %d signatures",
			len(m.Validators), len(m.Timestamps), len(m.Signatures))
	}
	for i, v := range m.Validators {
		if _, err := sdk.AccAddressFromBech32(v); err != nil {
			return ErrInvalidAddress.Wrapf("validators[%d]: %s", i, err)
		}
	}
	return nil
}

func (m *MsgProposeRetrieval) ValidateBasic() error {
	if err := validateAddress("minter", m.Minter); err != nil {
		return err
	}
	return validatePositive(m.Amount)
}

func (m *MsgProposeMint) ValidateBasic() error {
	if err := validateAddress("minter", m.Minter); err != nil {
		return err
	}
	if err := validatePositive(m.Amount); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(m.Destination); err != nil {
		return ErrInvalidDestination.Wrap(err.Error())
	}
	return nil
}

func (m *MsgMintM) ValidateBasic() error {
	return validateAddress("minter", m.Minter)
}

func (m *MsgBurnM) ValidateBasic() error {
	if err := validateAddress("payer", m.Payer); err != nil {
		return err
	}
	if err := validateAddress("minter", m.Minter); err != nil {
		return err
	}
	return validatePositive(m.MaxAmount)
}

func (m *MsgCancelMint) ValidateBasic() error {
	if err := validateAddress("validator", m.Validator); err != nil {
		return err
	}
	if err := validateAddress("minter", m.Minter); err != nil {
		return err
	}
	if m.MintID == 0 {
		return ErrProposalMismatch.Wrap("mint id must be positive")
	}
	return nil
}

func (m *MsgFreezeMinter) ValidateBasic() error {
	if err := validateAddress("validator", m.Validator); err != nil {
		return err
	}
	return validateAddress("minter", m.Minter)
}

func (m *MsgActivateMinter) ValidateBasic() error {
	if err := validateAddress("caller", m.Caller); err != nil {
		return err
	}
	return validateAddress("minter", m.Minter)
}

func (m *MsgDeactivateMinter) ValidateBasic() error {
	if err := validateAddress("caller", m.Caller); err != nil {
		return err
	}
	return validateAddress("minter", m.Minter)
}

func (m *MsgUpdateIndex) ValidateBasic() error {
	return validateAddress("caller", m.Caller)
}

func signers(addr string) []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(addr)}
}

// GetSigners returns the minter. It panics if ValidateBasic fails.
func (m *MsgUpdateCollateral) GetSigners() []sdk.AccAddress { return signers(m.Minter) }

func (m *MsgProposeRetrieval) GetSigners() []sdk.AccAddress { return signers(m.Minter) }

func (m *MsgProposeMint) GetSigners() []sdk.AccAddress { return signers(m.Minter) }

func (m *MsgMintM) GetSigners() []sdk.AccAddress { return signers(m.Minter) }

// GetSigners returns the payer whose M is burned.
func (m *MsgBurnM) GetSigners() []sdk.AccAddress { return signers(m.Payer) }

func (m *MsgCancelMint) GetSigners() []sdk.AccAddress { return signers(m.Validator) }

func (m *MsgFreezeMinter) GetSigners() []sdk.AccAddress { return signers(m.Validator) }

func (m *MsgActivateMinter) GetSigners() []sdk.AccAddress { return signers(m.Caller) }

func (m *MsgDeactivateMinter) GetSigners() []sdk.AccAddress { return signers(m.Caller) }

func (m *MsgUpdateIndex) GetSigners() []sdk.AccAddress { return signers(m.Caller) }
