package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "mintergateway"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

var (
	IndexStateKey                  = collections.NewPrefix(1) // key prefix for the global index state
	MintNonceKey                   = collections.NewPrefix(2) // key prefix for the mint proposal nonce
	RetrievalNonceKey              = collections.NewPrefix(3) // key prefix for the retrieval nonce
	TotalPrincipalOfActiveOwedMKey = collections.NewPrefix(4) // key prefix for the total active principal
	TotalInactiveOwedMKey          = collections.NewPrefix(5) // key prefix for the total inactive owed M
	MintersKeyPrefix               = collections.NewPrefix(6) // key prefix for (minter) => MinterState
	MintProposalsKeyPrefix         = collections.NewPrefix(7) // key prefix for (minter) => MintProposal
	PendingRetrievalsKeyPrefix     = collections.NewPrefix(8) // key prefix for (minter, retrieval_id) => amount
)
