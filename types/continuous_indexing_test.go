package types_test

import (
	"math/rand"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/mintgate-labs/mintgate/testutil/datagen"
	"github.com/mintgate-labs/mintgate/types"
)

func TestExponent(t *testing.T) {
	tcs := []struct {
		title string
		x     uint64
		lo    uint64
		hi    uint64
	}{
		{"e^0", 0, types.ExpScaledOne, types.ExpScaledOne},
		{"e^0.1", 100_000_000_000, 1_105_170_000_000, 1_105_171_000_000},
		{"e^1", types.ExpScaledOne, 2_718_281_000_000, 2_718_282_000_000},
		{"e^2", 2 * types.ExpScaledOne, 7_389_056_000_000, 7_389_057_000_000},
	}

	for _, tc := range tcs {
		t.Run(tc.title, func(t *testing.T) {
			got := types.Exponent(tc.x)
			require.True(t, got.GTE(sdkmath.NewUint(tc.lo)), "got %s", got)
			require.True(t, got.LTE(sdkmath.NewUint(tc.hi)), "got %s", got)
		})
	}
}

func TestExponentClampsInput(t *testing.T) {
	capped := types.Exponent(types.MaxExponentInput)
	require.True(t, types.Exponent(types.MaxExponentInput*2).Equal(capped))
	require.True(t, capped.LTE(types.MaxUint128()))
}

func TestContinuousIndexOneYear(t *testing.T) {
	// 10% for a full year compounds to e^0.1
	idx := types.ContinuousIndex(1000, types.SecondsPerYear)
	require.True(t, idx.Equal(types.Exponent(100_000_000_000)))

	require.True(t, types.ContinuousIndex(0, types.SecondsPerYear).Equal(types.ExpScaledOneUint()))
	require.True(t, types.ContinuousIndex(1000, 0).Equal(types.ExpScaledOneUint()))
}

func TestCurrentIndexSaturates(t *testing.T) {
	idx := types.CurrentIndex(types.MaxUint128(), 40_000, types.SecondsPerYear*100)
	require.True(t, idx.Equal(types.MaxUint128()))
}

func TestConvertFromBasisPoints(t *testing.T) {
	require.Equal(t, uint64(1e11), types.ConvertFromBasisPoints(1000).Uint64())
	require.Equal(t, types.ExpScaledOne, types.ConvertFromBasisPoints(10_000).Uint64())
}

func FuzzExponentMonotone(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)

	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		a := r.Uint64() % (types.MaxExponentInput + 1)
		b := r.Uint64() % (types.MaxExponentInput + 1)
		if a > b {
			a, b = b, a
		}
		require.True(t, types.Exponent(a).LTE(types.Exponent(b)))
	})
}

func FuzzPrincipalRoundTripFavoursProtocol(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)

	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		index := sdkmath.NewUint(types.ExpScaledOne + r.Uint64()%(10*types.ExpScaledOne))
		present := sdkmath.NewUint(r.Uint64())

		// principal owed rounds up, so its present value covers the amount
		principalUp, err := types.PrincipalFromPresent(present, index, true)
		require.NoError(t, err)
		backUp, err := types.PresentFromPrincipal(principalUp, index, true)
		require.NoError(t, err)
		require.True(t, backUp.GTE(present))

		// principal repaid rounds down, so it never exceeds what was paid
		principalDown, err := types.PrincipalFromPresent(present, index, false)
		require.NoError(t, err)
		backDown, err := types.PresentFromPrincipal(principalDown, index, false)
		require.NoError(t, err)
		require.True(t, backDown.LTE(present))
	})
}
