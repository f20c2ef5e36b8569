package types

const (
	EventTypeMint        = "mtoken_mint"
	EventTypeBurn        = "mtoken_burn"
	EventTypeIndexUpdate = "mtoken_index_updated"

	AttributeKeyAccount   = "account"
	AttributeKeySupply    = "supply"
	AttributeKeyTimestamp = "timestamp"
)
