package types

import (
	"encoding/binary"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/cometbft/cometbft/crypto/tmhash"
	sdk "github.com/cosmos/cosmos-sdk/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
)

const (
	// UpdateCollateralDomain separates collateral attestations from any other
	// message a validator key may sign.
	UpdateCollateralDomain = "mintgate/UpdateCollateral/v1"

	// MetadataHashLen is the length of the off-chain metadata hash.
	MetadataHashLen = 32

	word = 32
)

// UpdateCollateralDigest returns the digest a validator signs to attest that
// minter holds collateral at timestamp, having settled retrievalIDs.
//
// The preimage is the domain tag, the chain id, the length-prefixed minter
// address, the collateral as a 32-byte big-endian word, the count-prefixed
// retrieval ids as 8-byte words, the metadata hash and the timestamp.
func UpdateCollateralDigest(
	chainID string,
	minter sdk.AccAddress,
	collateral sdkmath.Uint,
	retrievalIDs []uint64,
	metadataHash []byte,
	timestamp uint64,
) ([]byte, error) {
	if len(metadataHash) != MetadataHashLen {
		return nil, ErrInvalidMetadataHash.Wrapf("got %d bytes", len(metadataHash))
	}
	if collateral.IsNil() {
		return nil, fmt.Errorf("collateral is not set")
	}
	if _, err := mgtypes.SafeUint240(collateral); err != nil {
		return nil, err
	}

	bz := make([]byte, 0, len(UpdateCollateralDomain)+len(chainID)+len(minter)+3*word+8*(len(retrievalIDs)+4))
	bz = append(bz, UpdateCollateralDomain...)
	bz = binary.BigEndian.AppendUint64(bz, uint64(len(chainID)))
	bz = append(bz, chainID...)
	bz = binary.BigEndian.AppendUint64(bz, uint64(len(minter)))
	bz = append(bz, minter...)
	bz = append(bz, collateral.BigInt().FillBytes(make([]byte, word))...)
	bz = binary.BigEndian.AppendUint64(bz, uint64(len(retrievalIDs)))
	for _, id := range retrievalIDs {
		bz = binary.BigEndian.AppendUint64(bz, id)
	}
	bz = append(bz, metadataHash...)
	bz = binary.BigEndian.AppendUint64(bz, timestamp)

	return tmhash.Sum(bz), nil
}
