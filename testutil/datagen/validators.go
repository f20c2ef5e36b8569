package datagen

import (
	"bytes"
	"sort"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/btcsuite/btcd/btcec/v2"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/mintgate-labs/mintgate/crypto/ecdsa"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

// ValidatorKey is a secp256k1 key able to sign collateral attestations.
type ValidatorKey struct {
	SK      *btcec.PrivateKey
	Address sdk.AccAddress
}

func GenRandomValidatorKey(t testing.TB) ValidatorKey {
	sk, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	return ValidatorKey{SK: sk, Address: ecdsa.AddressFromPubKey(sk.PubKey())}
}

// GenSortedValidatorKeys returns n validator keys ordered by address.
func GenSortedValidatorKeys(t testing.TB, n int) []ValidatorKey {
	keys := make([]ValidatorKey, n)
	for i := range keys {
		keys[i] = GenRandomValidatorKey(t)
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i].Address, keys[j].Address) < 0
	})
	return keys
}

// SignCollateral signs the collateral attestation of minter at timestamp.
func (v ValidatorKey) SignCollateral(
	t testing.TB,
	chainID string,
	minter sdk.AccAddress,
	collateral sdkmath.Uint,
	retrievalIDs []uint64,
	metadataHash []byte,
	timestamp uint64,
) []byte {
	digest, err := types.UpdateCollateralDigest(chainID, minter, collateral, retrievalIDs, metadataHash, timestamp)
	require.NoError(t, err)
	return ecdsa.Sign(v.SK, digest)
}
