package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type signerKey struct{}

// WithSigner attaches the authenticated sender of the message being handled
// to ctx.
func WithSigner(ctx sdk.Context, signer sdk.AccAddress) sdk.Context {
	return ctx.WithValue(signerKey{}, signer)
}

// SignerFromContext returns the sender attached by WithSigner.
func SignerFromContext(ctx context.Context) (sdk.AccAddress, bool) {
	signer, ok := ctx.Value(signerKey{}).(sdk.AccAddress)
	return signer, ok && len(signer) > 0
}
