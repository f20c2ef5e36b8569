package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mintgate-labs/mintgate/testutil/datagen"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
	registrartypes "github.com/mintgate-labs/mintgate/x/registrar/types"
)

func setThreshold(h *harness, threshold uint32) {
	h.SetParams(h.t, func(p *registrartypes.Params) {
		p.UpdateCollateralValidatorThreshold = threshold
	})
}

func TestVerifyQuorumReportsValidAndRequired(t *testing.T) {
	h := newHarness(t, 0)
	setThreshold(h, 2)
	minter := h.activeMinter()

	keys := datagen.GenSortedValidatorKeys(t, 3)
	unapproved, invalid, valid := keys[0], keys[1], keys[2]
	require.NoError(t, h.Registrar.ApproveValidator(h.Ctx, invalid.Address))
	require.NoError(t, h.Registrar.ApproveValidator(h.Ctx, valid.Address))

	now := h.Now()
	att := h.attestation(minter, 1_000, nil, now, unapproved, invalid, valid)
	// signed over a different collateral value
	att.Signatures[1] = invalid.SignCollateral(t, h.Ctx.ChainID(), minter, att.Collateral.AddUint64(1), nil, testMetadataHash, now)

	_, err := h.Keeper.VerifyQuorum(h.Ctx, minter, att)
	require.ErrorIs(t, err, types.ErrInsufficientQuorum)
	require.Contains(t, err.Error(), "1 valid signatures, 2 required")
}

func TestVerifyQuorumReturnsMinTimestamp(t *testing.T) {
	h := newHarness(t, 3)
	setThreshold(h, 2)
	minter := h.activeMinter()
	now := h.Now()

	att := h.attestation(minter, 5_000, nil, now-100, h.validators[0])
	later := h.attestation(minter, 5_000, nil, now-50, h.validators[1])
	att.Validators = append(att.Validators, later.Validators...)
	att.Timestamps = append(att.Timestamps, later.Timestamps...)
	att.Signatures = append(att.Signatures, later.Signatures...)

	ts, err := h.Keeper.VerifyQuorum(h.Ctx, minter, att)
	require.NoError(t, err)
	require.Equal(t, now-100, ts)
}

func TestVerifyQuorumSkipsZeroTimestamps(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()

	att := h.attestation(minter, 5_000, nil, 0, h.validators[0])
	_, err := h.Keeper.VerifyQuorum(h.Ctx, minter, att)
	require.ErrorIs(t, err, types.ErrInsufficientQuorum)
}

func TestVerifyQuorumRejectsMalformedInput(t *testing.T) {
	h := newHarness(t, 2)
	minter := h.activeMinter()
	now := h.Now()
	v0, v1 := h.validators[0], h.validators[1]

	t.Run("length mismatch", func(t *testing.T) {
		att := h.attestation(minter, 1, nil, now, v0, v1)
		att.Timestamps = att.Timestamps[:1]
		_, err := h.Keeper.VerifyQuorum(h.Ctx, minter, att)
		require.ErrorIs(t, err, types.ErrArrayLengthMismatch)
	})

	t.Run("unsorted", func(t *testing.T) {
		setThreshold(h, 2)
		t.Cleanup(func() { setThreshold(h, 1) })
		att := h.attestation(minter, 1, nil, now, v1, v0)
		_, err := h.Keeper.VerifyQuorum(h.Ctx, minter, att)
		require.ErrorIs(t, err, types.ErrUnsortedOrDuplicateValidator)
	})

	t.Run("duplicate", func(t *testing.T) {
		setThreshold(h, 2)
		t.Cleanup(func() { setThreshold(h, 1) })
		att := h.attestation(minter, 1, nil, now, v0, v0)
		_, err := h.Keeper.VerifyQuorum(h.Ctx, minter, att)
		require.ErrorIs(t, err, types.ErrUnsortedOrDuplicateValidator)
	})

	t.Run("future timestamp", func(t *testing.T) {
		att := h.attestation(minter, 1, nil, now+1, v0)
		_, err := h.Keeper.VerifyQuorum(h.Ctx, minter, att)
		require.ErrorIs(t, err, types.ErrFutureTimestamp)
	})

	t.Run("signature for another minter", func(t *testing.T) {
		att := h.attestation(datagen.GenRandomAddress(), 1, nil, now, v0)
		_, err := h.Keeper.VerifyQuorum(h.Ctx, minter, att)
		require.ErrorIs(t, err, types.ErrInsufficientQuorum)
	})
}

func TestVerifyQuorumZeroThreshold(t *testing.T) {
	h := newHarness(t, 0)
	setThreshold(h, 0)
	minter := h.activeMinter()

	att := h.attestation(minter, 1_000, nil, h.Now())
	ts, err := h.Keeper.VerifyQuorum(h.Ctx, minter, att)
	require.NoError(t, err)
	require.Equal(t, h.Now(), ts)
}

func TestVerifyQuorumRejectsBadMetadataHashUpFront(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()
	unapproved := datagen.GenRandomValidatorKey(t)

	t.Run("zero threshold", func(t *testing.T) {
		setThreshold(h, 0)
		t.Cleanup(func() { setThreshold(h, 1) })
		att := h.attestation(minter, 1, nil, h.Now())
		att.MetadataHash = testMetadataHash[:31]
		_, err := h.Keeper.VerifyQuorum(h.Ctx, minter, att)
		require.ErrorIs(t, err, types.ErrInvalidMetadataHash)
	})

	t.Run("no approved signer", func(t *testing.T) {
		att := h.attestation(minter, 1, nil, h.Now(), unapproved)
		att.MetadataHash = nil
		_, err := h.Keeper.VerifyQuorum(h.Ctx, minter, att)
		require.ErrorIs(t, err, types.ErrInvalidMetadataHash)
	})
}
