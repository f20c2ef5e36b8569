package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
)

// MinterState is the per-minter accounting record.
type MinterState struct {
	IsActive      bool `json:"is_active"`
	IsDeactivated bool `json:"is_deactivated"`

	Collateral             sdkmath.Uint `json:"collateral"`
	TotalPendingRetrievals sdkmath.Uint `json:"total_pending_retrievals"`

	UpdateTimestamp         uint64 `json:"update_timestamp"`
	LastUpdateInterval      uint32 `json:"last_update_interval"`
	PenalizedUntilTimestamp uint64 `json:"penalized_until_timestamp"`
	FrozenUntilTimestamp    uint64 `json:"frozen_until_timestamp"`

	PrincipalOfActiveOwedM sdkmath.Uint `json:"principal_of_active_owed_m"`
	InactiveOwedM          sdkmath.Uint `json:"inactive_owed_m"`
}

// NewMinterState returns the state of a minter that was never activated.
func NewMinterState() MinterState {
	return MinterState{
		Collateral:             sdkmath.ZeroUint(),
		TotalPendingRetrievals: sdkmath.ZeroUint(),
		PrincipalOfActiveOwedM: sdkmath.ZeroUint(),
		InactiveOwedM:          sdkmath.ZeroUint(),
	}
}

// Deactivated returns the terminal state of a minter carrying inactiveOwedM.
func Deactivated(inactiveOwedM sdkmath.Uint) MinterState {
	s := NewMinterState()
	s.IsDeactivated = true
	s.InactiveOwedM = inactiveOwedM
	return s
}

func (s MinterState) Validate() error {
	for _, f := range []struct {
		name string
		v    sdkmath.Uint
	}{
		{"collateral", s.Collateral},
		{"total_pending_retrievals", s.TotalPendingRetrievals},
		{"principal_of_active_owed_m", s.PrincipalOfActiveOwedM},
		{"inactive_owed_m", s.InactiveOwedM},
	} {
		if f.v.IsNil() {
			return fmt.Errorf("%s is not set", f.name)
		}
	}
	if s.IsActive && s.IsDeactivated {
		return fmt.Errorf("minter cannot be both active and deactivated")
	}
	if _, err := mgtypes.SafeUint240(s.Collateral); err != nil {
		return fmt.Errorf("collateral: %w", err)
	}
	if _, err := mgtypes.SafeUint240(s.TotalPendingRetrievals); err != nil {
		return fmt.Errorf("total pending retrievals: %w", err)
	}
	if _, err := mgtypes.SafeUint112(s.PrincipalOfActiveOwedM); err != nil {
		return fmt.Errorf("principal of active owed M: %w", err)
	}
	if _, err := mgtypes.SafeUint240(s.InactiveOwedM); err != nil {
		return fmt.Errorf("inactive owed M: %w", err)
	}
	if s.IsDeactivated && !s.PrincipalOfActiveOwedM.IsZero() {
		return fmt.Errorf("deactivated minter carries active principal %s", s.PrincipalOfActiveOwedM)
	}
	return nil
}

// IndexState is the continuous index checkpoint.
type IndexState struct {
	LatestIndex           sdkmath.Uint `json:"latest_index"`
	LatestRate            uint32       `json:"latest_rate"`
	LatestUpdateTimestamp uint64       `json:"latest_update_timestamp"`
}

// NewIndexState returns the checkpoint of an index starting at 1 at ts.
func NewIndexState(ts uint64) IndexState {
	return IndexState{
		LatestIndex:           mgtypes.ExpScaledOneUint(),
		LatestUpdateTimestamp: ts,
	}
}

func (s IndexState) Validate() error {
	if s.LatestIndex.IsNil() {
		return fmt.Errorf("latest index is not set")
	}
	if s.LatestIndex.LT(mgtypes.ExpScaledOneUint()) {
		return fmt.Errorf("latest index %s is below 1", s.LatestIndex)
	}
	if _, err := mgtypes.SafeUint128(s.LatestIndex); err != nil {
		return fmt.Errorf("latest index: %w", err)
	}
	return nil
}

// MintProposal is the single outstanding mint request of a minter.
type MintProposal struct {
	ID          uint64       `json:"id"`
	CreatedAt   uint64       `json:"created_at"`
	Destination string       `json:"destination"`
	Amount      sdkmath.Uint `json:"amount"`
}

func (p MintProposal) Validate() error {
	if p.ID == 0 {
		return fmt.Errorf("mint proposal id must be positive")
	}
	if _, err := sdk.AccAddressFromBech32(p.Destination); err != nil {
		return ErrInvalidDestination.Wrap(err.Error())
	}
	if p.Amount.IsNil() || p.Amount.IsZero() {
		return ErrZeroAmount
	}
	if _, err := mgtypes.SafeUint240(p.Amount); err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	return nil
}

// ActiveAt returns the first second the proposal can be executed.
func (p MintProposal) ActiveAt(mintDelay uint32) uint64 {
	return p.CreatedAt + uint64(mintDelay)
}

// ExpiresAt returns the last second the proposal can be executed.
func (p MintProposal) ExpiresAt(mintDelay, mintTTL uint32) uint64 {
	return p.ActiveAt(mintDelay) + uint64(mintTTL)
}
