package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type effectsCommittedKey struct{}

// WithEffectsCommitted marks ctx as carrying a gateway operation whose
// store writes are all done. Collaborators are only called with a marked
// context.
func WithEffectsCommitted(ctx sdk.Context) sdk.Context {
	return ctx.WithValue(effectsCommittedKey{}, true)
}

// EffectsCommitted reports whether ctx was marked by WithEffectsCommitted.
func EffectsCommitted(ctx context.Context) bool {
	committed, _ := ctx.Value(effectsCommittedKey{}).(bool)
	return committed
}
