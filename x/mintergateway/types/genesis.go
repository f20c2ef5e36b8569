package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
)

// GenesisMinter is a minter record keyed by its bech32 address.
type GenesisMinter struct {
	Address string      `json:"address"`
	State   MinterState `json:"state"`
}

func (m GenesisMinter) Validate() error {
	if _, err := sdk.AccAddressFromBech32(m.Address); err != nil {
		return ErrInvalidAddress.Wrapf("%s: %s", m.Address, err)
	}
	return m.State.Validate()
}

// GenesisMintProposal is the outstanding proposal of a minter.
type GenesisMintProposal struct {
	Minter   string       `json:"minter"`
	Proposal MintProposal `json:"proposal"`
}

func (p GenesisMintProposal) Validate() error {
	if _, err := sdk.AccAddressFromBech32(p.Minter); err != nil {
		return ErrInvalidAddress.Wrapf("%s: %s", p.Minter, err)
	}
	return p.Proposal.Validate()
}

// GenesisRetrieval is a pending collateral retrieval.
type GenesisRetrieval struct {
	Minter      string       `json:"minter"`
	RetrievalID uint64       `json:"retrieval_id"`
	Amount      sdkmath.Uint `json:"amount"`
}

func (r GenesisRetrieval) Validate() error {
	if _, err := sdk.AccAddressFromBech32(r.Minter); err != nil {
		return ErrInvalidAddress.Wrapf("%s: %s", r.Minter, err)
	}
	if r.RetrievalID == 0 {
		return fmt.Errorf("retrieval id must be positive")
	}
	if r.Amount.IsNil() || r.Amount.IsZero() {
		return ErrZeroAmount
	}
	return nil
}

// GenesisState is the full minter gateway state.
type GenesisState struct {
	IndexState                  IndexState            `json:"index_state"`
	MintNonce                   uint64                `json:"mint_nonce"`
	RetrievalNonce              uint64                `json:"retrieval_nonce"`
	TotalPrincipalOfActiveOwedM sdkmath.Uint          `json:"total_principal_of_active_owed_m"`
	TotalInactiveOwedM          sdkmath.Uint          `json:"total_inactive_owed_m"`
	Minters                     []GenesisMinter       `json:"minters"`
	MintProposals               []GenesisMintProposal `json:"mint_proposals"`
	PendingRetrievals           []GenesisRetrieval    `json:"pending_retrievals"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		IndexState:                  NewIndexState(0),
		TotalPrincipalOfActiveOwedM: sdkmath.ZeroUint(),
		TotalInactiveOwedM:          sdkmath.ZeroUint(),
		Minters:                     []GenesisMinter{},
		MintProposals:               []GenesisMintProposal{},
		PendingRetrievals:           []GenesisRetrieval{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure. Besides the shape of every record it checks that the global totals
// and per-minter pending retrievals add up.
func (gs GenesisState) Validate() error {
	if err := gs.IndexState.Validate(); err != nil {
		return ErrInvalidGenesis.Wrapf("index state: %s", err)
	}
	if gs.TotalPrincipalOfActiveOwedM.IsNil() || gs.TotalInactiveOwedM.IsNil() {
		return ErrInvalidGenesis.Wrap("totals are not set")
	}

	if err := mgtypes.ValidateEntries(gs.Minters, func(m GenesisMinter) string { return m.Address }); err != nil {
		return ErrInvalidGenesis.Wrapf("minters: %s", err)
	}
	minters := make(map[string]MinterState, len(gs.Minters))
	totalPrincipal, totalInactive := sdkmath.ZeroUint(), sdkmath.ZeroUint()
	for _, m := range gs.Minters {
		minters[m.Address] = m.State
		totalPrincipal = totalPrincipal.Add(m.State.PrincipalOfActiveOwedM)
		totalInactive = totalInactive.Add(m.State.InactiveOwedM)
	}
	if !totalPrincipal.Equal(gs.TotalPrincipalOfActiveOwedM) {
		return ErrInvalidGenesis.Wrapf("total principal %s does not match minters sum %s", gs.TotalPrincipalOfActiveOwedM, totalPrincipal)
	}
	if !totalInactive.Equal(gs.TotalInactiveOwedM) {
		return ErrInvalidGenesis.Wrapf("total inactive owed M %s does not match minters sum %s", gs.TotalInactiveOwedM, totalInactive)
	}

	if err := mgtypes.ValidateEntries(gs.MintProposals, func(p GenesisMintProposal) string { return p.Minter }); err != nil {
		return ErrInvalidGenesis.Wrapf("mint proposals: %s", err)
	}
	for _, p := range gs.MintProposals {
		if _, ok := minters[p.Minter]; !ok {
			return ErrInvalidGenesis.Wrapf("mint proposal of unknown minter %s", p.Minter)
		}
		if p.Proposal.ID > gs.MintNonce {
			return ErrInvalidGenesis.Wrapf("mint proposal id %d is above nonce %d", p.Proposal.ID, gs.MintNonce)
		}
	}

	type retrievalKey struct {
		minter string
		id     uint64
	}
	if err := mgtypes.ValidateEntries(gs.PendingRetrievals, func(r GenesisRetrieval) retrievalKey {
		return retrievalKey{r.Minter, r.RetrievalID}
	}); err != nil {
		return ErrInvalidGenesis.Wrapf("pending retrievals: %s", err)
	}
	pending := make(map[string]sdkmath.Uint, len(minters))
	for _, r := range gs.PendingRetrievals {
		if _, ok := minters[r.Minter]; !ok {
			return ErrInvalidGenesis.Wrapf("retrieval of unknown minter %s", r.Minter)
		}
		if r.RetrievalID > gs.RetrievalNonce {
			return ErrInvalidGenesis.Wrapf("retrieval id %d is above nonce %d", r.RetrievalID, gs.RetrievalNonce)
		}
		sum, ok := pending[r.Minter]
		if !ok {
			sum = sdkmath.ZeroUint()
		}
		pending[r.Minter] = sum.Add(r.Amount)
	}
	for _, m := range gs.Minters {
		sum, ok := pending[m.Address]
		if !ok {
			sum = sdkmath.ZeroUint()
		}
		if !sum.Equal(m.State.TotalPendingRetrievals) {
			return ErrInvalidGenesis.Wrapf("minter %s pending retrievals %s do not match entries sum %s", m.Address, m.State.TotalPendingRetrievals, sum)
		}
	}
	return nil
}
