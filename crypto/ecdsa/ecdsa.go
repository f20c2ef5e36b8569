package ecdsa

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
)

const (
	// DigestLen is the length of the digests accepted by Sign and Recover.
	DigestLen = 32
	// SignatureLen is the length of a compact recoverable signature.
	SignatureLen = 65
)

// Sign produces a compact recoverable signature over a 32-byte digest.
func Sign(sk *btcec.PrivateKey, digest []byte) []byte {
	return ecdsa.SignCompact(sk, digest, true)
}

// AddressFromPubKey returns the 20-byte account address of pk, which is the
// Hash160 of its compressed serialization.
func AddressFromPubKey(pk *btcec.PublicKey) []byte {
	return btcutil.Hash160(pk.SerializeCompressed())
}

// RecoverPublicKey recovers the signer's public key from a compact signature.
// Signatures with a high S value or an uncompressed key flag are rejected.
func RecoverPublicKey(digest, sigBytes []byte) (*btcec.PublicKey, error) {
	if len(digest) != DigestLen {
		return nil, fmt.Errorf("invalid digest length: got %d, want %d", len(digest), DigestLen)
	}
	if len(sigBytes) != SignatureLen {
		return nil, fmt.Errorf("invalid signature length: got %d, want %d", len(sigBytes), SignatureLen)
	}

	var s btcec.ModNScalar
	if overflow := s.SetByteSlice(sigBytes[33:65]); overflow {
		return nil, fmt.Errorf("invalid signature: S >= group order")
	}
	if s.IsOverHalfOrder() {
		return nil, fmt.Errorf("invalid signature: S >= group order/2")
	}

	recoveredPK, wasCompressed, err := ecdsa.RecoverCompact(sigBytes, digest)
	if err != nil {
		return nil, err
	}
	if !wasCompressed {
		return nil, fmt.Errorf("unsupported signature: uncompressed public key")
	}
	return recoveredPK, nil
}

// RecoverAddress returns the address of the key that signed digest.
func RecoverAddress(digest, sigBytes []byte) ([]byte, error) {
	pk, err := RecoverPublicKey(digest, sigBytes)
	if err != nil {
		return nil, err
	}
	return AddressFromPubKey(pk), nil
}

// Verifier checks recoverable secp256k1 signatures against account addresses.
type Verifier struct{}

// IsValidSignature reports whether sig over digest was produced by signer.
// It never returns an error; malformed input simply fails verification.
func (Verifier) IsValidSignature(signer, digest, sig []byte) bool {
	addr, err := RecoverAddress(digest, sig)
	if err != nil {
		return false
	}
	return bytes.Equal(addr, signer)
}
