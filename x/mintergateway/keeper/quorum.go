package keeper

import (
	"bytes"
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

// CollateralAttestation is a collateral value together with the validator
// signatures attesting it.
type CollateralAttestation struct {
	Collateral   sdkmath.Uint
	RetrievalIDs []uint64
	MetadataHash []byte
	Validators   []sdk.AccAddress
	Timestamps   []uint64
	Signatures   [][]byte
}

// VerifyQuorum counts the valid signatures of att and returns the minimum
// timestamp among them, starting from the block time.
//
// Validators must be strictly ascending. Signatures from unapproved
// validators, with a zero timestamp or failing verification are skipped, and
// counting stops as soon as the threshold is reached. A zero threshold
// accepts an empty attestation and returns the block time.
func (k Keeper) VerifyQuorum(ctx context.Context, minter sdk.AccAddress, att CollateralAttestation) (uint64, error) {
	if len(att.Validators) != len(att.Timestamps) || len(att.Validators) != len(att.Signatures) {
		return 0, types.ErrArrayLengthMismatch.Wrapf("%d validators, %d timestamps, %d signatures",
			len(att.Validators), len(att.Timestamps), len(att.Signatures))
	}
	if len(att.MetadataHash) != types.MetadataHashLen {
		return 0, types.ErrInvalidMetadataHash.Wrapf("got %d bytes", len(att.MetadataHash))
	}

	now := blockTime(ctx)
	threshold := k.registrar.UpdateCollateralValidatorThreshold(ctx)
	minTimestamp := now
	if threshold == 0 {
		return minTimestamp, nil
	}

	chainID := sdk.UnwrapSDKContext(ctx).ChainID()
	var valid uint32
	for i, validator := range att.Validators {
		if i > 0 && bytes.Compare(validator, att.Validators[i-1]) <= 0 {
			return 0, types.ErrUnsortedOrDuplicateValidator.Wrapf("validator %d (%s)", i, validator)
		}

		ts := att.Timestamps[i]
		if ts > now {
			return 0, types.ErrFutureTimestamp.Wrapf("timestamp %d of validator %s is after %d", ts, validator, now)
		}
		if ts == 0 || !k.registrar.IsApprovedValidator(ctx, validator) {
			continue
		}

		digest, err := types.UpdateCollateralDigest(chainID, minter, att.Collateral, att.RetrievalIDs, att.MetadataHash, ts)
		if err != nil {
			return 0, err
		}
		if !k.verifier.IsValidSignature(validator, digest, att.Signatures[i]) {
			continue
		}

		if ts < minTimestamp {
			minTimestamp = ts
		}
		valid++
		if valid == threshold {
			return minTimestamp, nil
		}
	}

	return 0, types.ErrInsufficientQuorum.Wrapf("%d valid signatures, %d required", valid, threshold)
}
