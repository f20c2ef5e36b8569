package types

const (
	EventTypeParamsUpdated     = "registrar_params_updated"
	EventTypeMinterApproved    = "minter_approved"
	EventTypeMinterRevoked     = "minter_revoked"
	EventTypeValidatorApproved = "validator_approved"
	EventTypeValidatorRevoked  = "validator_revoked"

	AttributeKeyAccount   = "account"
	AttributeKeyAuthority = "authority"
)
