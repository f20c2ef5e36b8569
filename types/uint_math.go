package types

import (
	"fmt"
	"math/big"

	sdkmath "cosmossdk.io/math"
)

const (
	// ExpScaledOne is 1.0 in the fixed-point representation used for indices
	// and continuous growth factors.
	ExpScaledOne uint64 = 1e12

	// BpsScaledOne is 100% expressed in basis points.
	BpsScaledOne uint64 = 1e4

	// SecondsPerYear is the year length used to annualise rates.
	SecondsPerYear uint64 = 31_536_000
)

var (
	expScaledOne = sdkmath.NewUint(ExpScaledOne)
	bpsScaledOne = sdkmath.NewUint(BpsScaledOne)

	maxUint32  = maxUintOfWidth(32)
	maxUint40  = maxUintOfWidth(40)
	maxUint48  = maxUintOfWidth(48)
	maxUint112 = maxUintOfWidth(112)
	maxUint128 = maxUintOfWidth(128)
	maxUint240 = maxUintOfWidth(240)
)

func maxUintOfWidth(bits uint) sdkmath.Uint {
	return sdkmath.NewUintFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1)))
}

// ExpScaledOneUint returns 1.0 as an index.
func ExpScaledOneUint() sdkmath.Uint { return expScaledOne }

// BpsScaledOneUint returns 100% in basis points.
func BpsScaledOneUint() sdkmath.Uint { return bpsScaledOne }

// MaxUint112 is the largest principal amount.
func MaxUint112() sdkmath.Uint { return maxUint112 }

// MaxUint128 is the largest index.
func MaxUint128() sdkmath.Uint { return maxUint128 }

// MaxUint240 is the largest present amount.
func MaxUint240() sdkmath.Uint { return maxUint240 }

// MulDivDown computes x*y/z rounded towards zero.
func MulDivDown(x, y, z sdkmath.Uint) (sdkmath.Uint, error) {
	if z.IsZero() {
		return sdkmath.ZeroUint(), ErrDivisionByZero
	}
	prod := new(big.Int).Mul(x.BigInt(), y.BigInt())
	return newUint(prod.Quo(prod, z.BigInt()))
}

// MulDivUp computes x*y/z rounding any non-zero remainder up.
func MulDivUp(x, y, z sdkmath.Uint) (sdkmath.Uint, error) {
	if z.IsZero() {
		return sdkmath.ZeroUint(), ErrDivisionByZero
	}
	prod := new(big.Int).Mul(x.BigInt(), y.BigInt())
	quo, rem := new(big.Int).QuoRem(prod, z.BigInt(), new(big.Int))
	if rem.Sign() != 0 {
		quo.Add(quo, big.NewInt(1))
	}
	return newUint(quo)
}

// MultiplyDown returns x*index/1e12 rounded down.
func MultiplyDown(x, index sdkmath.Uint) (sdkmath.Uint, error) {
	return MulDivDown(x, index, expScaledOne)
}

// MultiplyUp returns x*index/1e12 rounded up.
func MultiplyUp(x, index sdkmath.Uint) (sdkmath.Uint, error) {
	return MulDivUp(x, index, expScaledOne)
}

// DivideDown returns x*1e12/index rounded down.
func DivideDown(x, index sdkmath.Uint) (sdkmath.Uint, error) {
	return MulDivDown(x, expScaledOne, index)
}

// DivideUp returns x*1e12/index rounded up.
func DivideUp(x, index sdkmath.Uint) (sdkmath.Uint, error) {
	return MulDivUp(x, expScaledOne, index)
}

// MultiplyIndicesDown composes two indices, rounding down.
func MultiplyIndicesDown(index, deltaIndex sdkmath.Uint) (sdkmath.Uint, error) {
	return MulDivDown(index, deltaIndex, expScaledOne)
}

// MultiplyIndicesUp composes two indices, rounding up.
func MultiplyIndicesUp(index, deltaIndex sdkmath.Uint) (sdkmath.Uint, error) {
	return MulDivUp(index, deltaIndex, expScaledOne)
}

// ApplyBasisPoints returns amount*bps/1e4 rounded down.
func ApplyBasisPoints(amount sdkmath.Uint, bps uint32) (sdkmath.Uint, error) {
	return MulDivDown(amount, sdkmath.NewUint(uint64(bps)), bpsScaledOne)
}

// newUint wraps a non-negative big.Int, refusing anything wider than 256 bits
// instead of panicking like sdkmath.NewUintFromBigInt does.
func newUint(i *big.Int) (sdkmath.Uint, error) {
	if i.Sign() < 0 {
		return sdkmath.ZeroUint(), fmt.Errorf("%w: negative result %s", ErrOverflow, i)
	}
	if err := sdkmath.UintOverflow(i); err != nil {
		return sdkmath.ZeroUint(), fmt.Errorf("%w: %s", ErrOverflow, err.Error())
	}
	return sdkmath.NewUintFromBigInt(i), nil
}

// SafeAdd returns x+y, failing once the sum exceeds max.
func SafeAdd(x, y, max sdkmath.Uint) (sdkmath.Uint, error) {
	sum, err := newUint(new(big.Int).Add(x.BigInt(), y.BigInt()))
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return safeCast(sum, max)
}

// SafeSub returns x-y, failing instead of wrapping when y > x.
func SafeSub(x, y sdkmath.Uint) (sdkmath.Uint, error) {
	if y.GT(x) {
		return sdkmath.ZeroUint(), fmt.Errorf("%w: %s - %s underflows", ErrOverflow, x, y)
	}
	return x.Sub(y), nil
}

// SaturatingSub returns x-y, or zero when y > x.
func SaturatingSub(x, y sdkmath.Uint) sdkmath.Uint {
	if y.GTE(x) {
		return sdkmath.ZeroUint()
	}
	return x.Sub(y)
}

func safeCast(x, max sdkmath.Uint) (sdkmath.Uint, error) {
	if x.GT(max) {
		return sdkmath.ZeroUint(), fmt.Errorf("%w: %s exceeds %s", ErrOverflow, x, max)
	}
	return x, nil
}

// SafeUint112 casts x to the principal width.
func SafeUint112(x sdkmath.Uint) (sdkmath.Uint, error) { return safeCast(x, maxUint112) }

// SafeUint128 casts x to the index width.
func SafeUint128(x sdkmath.Uint) (sdkmath.Uint, error) { return safeCast(x, maxUint128) }

// SafeUint240 casts x to the present amount width.
func SafeUint240(x sdkmath.Uint) (sdkmath.Uint, error) { return safeCast(x, maxUint240) }

// SafeUint48 casts x to the growth factor width.
func SafeUint48(x sdkmath.Uint) (sdkmath.Uint, error) { return safeCast(x, maxUint48) }

// SafeUint32 casts x to a uint32.
func SafeUint32(x sdkmath.Uint) (uint32, error) {
	v, err := safeCast(x, maxUint32)
	if err != nil {
		return 0, err
	}
	return uint32(v.Uint64()), nil
}

// SafeUint40 casts x to a timestamp.
func SafeUint40(x sdkmath.Uint) (uint64, error) {
	v, err := safeCast(x, maxUint40)
	if err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}

// BoundUint112 saturates x at the principal width.
func BoundUint112(x sdkmath.Uint) sdkmath.Uint { return sdkmath.MinUint(x, maxUint112) }

// BoundUint128 saturates x at the index width.
func BoundUint128(x sdkmath.Uint) sdkmath.Uint { return sdkmath.MinUint(x, maxUint128) }

// MinU64 returns the smaller of a and b.
func MinU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// MaxU64 returns the larger of a and b.
func MaxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
