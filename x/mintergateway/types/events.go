package types

const (
	EventTypeCollateralUpdated = "collateral_updated"
	EventTypeRetrievalCreated  = "retrieval_created"
	EventTypeMintProposed      = "mint_proposed"
	EventTypeMintExecuted      = "mint_executed"
	EventTypeMintCanceled      = "mint_canceled"
	EventTypeBurnExecuted      = "burn_executed"
	EventTypeMinterFrozen      = "minter_frozen"
	EventTypeMinterActivated   = "minter_activated"
	EventTypeMinterDeactivated = "minter_deactivated"
	EventTypePenaltyImposed    = "penalty_imposed"
	EventTypeIndexUpdated      = "index_updated"
	EventTypeExcessOwedMinted  = "excess_owed_minted"

	AttributeKeyMinter          = "minter"
	AttributeKeyValidator       = "validator"
	AttributeKeyCaller          = "caller"
	AttributeKeyPayer           = "payer"
	AttributeKeyDestination     = "destination"
	AttributeKeyTreasury        = "treasury"
	AttributeKeyCollateral      = "collateral"
	AttributeKeyResolvedAmount  = "resolved_retrievals"
	AttributeKeyMetadataHash    = "metadata_hash"
	AttributeKeyTimestamp       = "timestamp"
	AttributeKeyMintID          = "mint_id"
	AttributeKeyRetrievalID     = "retrieval_id"
	AttributeKeyAmount          = "amount"
	AttributeKeyPrincipalAmount = "principal_amount"
	AttributeKeyFrozenUntil     = "frozen_until"
	AttributeKeyInactiveOwedM   = "inactive_owed_m"
	AttributeKeyPenaltyKind     = "kind"
	AttributeKeyMissedIntervals = "missed_intervals"
	AttributeKeyIndex           = "index"
	AttributeKeyRate            = "rate"

	PenaltyKindMissedUpdates   = "missed_updates"
	PenaltyKindUndercollateral = "undercollateralized"
)
