package datagen

import (
	"math/rand"
	"testing"
	"time"

	"github.com/cometbft/cometbft/crypto/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AddRandomSeedsToFuzzer seeds the fuzzer with n time-derived seeds.
func AddRandomSeedsToFuzzer(f *testing.F, n uint) {
	// use the current time as the base seed so that every run explores new inputs
	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))
	for i := uint(0); i < n; i++ {
		f.Add(r.Int63())
	}
}

func GenRandomByteArray(r *rand.Rand, length uint64) []byte {
	bz := make([]byte, length)
	r.Read(bz)
	return bz
}

// GenRandomAddress returns a random 20-byte account address.
func GenRandomAddress() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

// GenRandomAddresses returns n distinct random account addresses.
func GenRandomAddresses(n int) []sdk.AccAddress {
	addrs := make([]sdk.AccAddress, 0, n)
	seen := make(map[string]struct{}, n)
	for len(addrs) < n {
		addr := GenRandomAddress()
		if _, ok := seen[addr.String()]; ok {
			continue
		}
		seen[addr.String()] = struct{}{}
		addrs = append(addrs, addr)
	}
	return addrs
}
