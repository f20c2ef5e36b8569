package types

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
)

const (
	// MaxExponentInput caps the exponent argument at 40.0 so growth stays
	// within the index width.
	MaxExponentInput uint64 = 40 * ExpScaledOne

	// MaxExponentTerms bounds the series expansion.
	MaxExponentTerms = 256
)

// ConvertFromBasisPoints rescales a basis point rate to the 1e12 fixed-point
// representation.
func ConvertFromBasisPoints(bps uint32) sdkmath.Uint {
	return sdkmath.NewUint(uint64(bps)).MulUint64(ExpScaledOne).QuoUint64(BpsScaledOne)
}

// Exponent approximates e^x for x in 1e12 fixed point. Every term of the
// series is floored, so the result never exceeds the true value and is
// non-decreasing in x.
func Exponent(x uint64) sdkmath.Uint {
	if x > MaxExponentInput {
		x = MaxExponentInput
	}
	one := new(big.Int).SetUint64(ExpScaledOne)
	bx := new(big.Int).SetUint64(x)

	sum := new(big.Int).Set(one)
	term := new(big.Int).Set(one)
	div := new(big.Int)
	for n := int64(1); n <= MaxExponentTerms; n++ {
		term.Mul(term, bx)
		div.Mul(one, big.NewInt(n))
		term.Quo(term, div)
		if term.Sign() == 0 {
			break
		}
		sum.Add(sum, term)
	}
	return sdkmath.NewUintFromBigInt(sum)
}

// ContinuousIndex returns the growth factor e^(rate*dt/year) for a yearly
// rate in basis points compounded continuously over dt seconds.
func ContinuousIndex(rateBps uint32, dt uint64) sdkmath.Uint {
	if rateBps == 0 || dt == 0 {
		return expScaledOne
	}
	x := new(big.Int).Mul(ConvertFromBasisPoints(rateBps).BigInt(), new(big.Int).SetUint64(dt))
	x.Quo(x, new(big.Int).SetUint64(SecondsPerYear))
	if !x.IsUint64() || x.Uint64() > MaxExponentInput {
		return Exponent(MaxExponentInput)
	}
	return Exponent(x.Uint64())
}

// CurrentIndex grows latestIndex by rateBps over dt seconds. The result is
// rounded up and saturated at the index width.
func CurrentIndex(latestIndex sdkmath.Uint, rateBps uint32, dt uint64) sdkmath.Uint {
	next, err := MultiplyIndicesUp(latestIndex, ContinuousIndex(rateBps, dt))
	if err != nil {
		return maxUint128
	}
	return BoundUint128(next)
}

// PresentFromPrincipal converts a principal amount to its present value.
func PresentFromPrincipal(principal, index sdkmath.Uint, roundUp bool) (sdkmath.Uint, error) {
	if roundUp {
		return MultiplyUp(principal, index)
	}
	return MultiplyDown(principal, index)
}

// PrincipalFromPresent converts a present amount to principal at index.
func PrincipalFromPresent(present, index sdkmath.Uint, roundUp bool) (sdkmath.Uint, error) {
	if roundUp {
		return DivideUp(present, index)
	}
	return DivideDown(present, index)
}
