package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SafeNewCoin safely validates the coin created instead of panicking.
// Returns an error if the coin denomination or amount is invalid.
func SafeNewCoin(denom string, amount sdkmath.Int) (sdk.Coin, error) {
	coin := sdk.Coin{
		Denom:  denom,
		Amount: amount,
	}

	if err := coin.Validate(); err != nil {
		return sdk.Coin{}, err
	}

	return coin, nil
}

// UintToCoins converts an unsigned amount into a single-denom coin set.
// A zero amount yields an empty set.
// Ex.: UintToCoins("uusdm", 500) = 500uusdm
func UintToCoins(denom string, amount sdkmath.Uint) (sdk.Coins, error) {
	if amount.IsNil() {
		return nil, fmt.Errorf("%w: nil amount", ErrInvalidAmount)
	}
	if amount.IsZero() {
		return sdk.NewCoins(), nil
	}

	coin, err := SafeNewCoin(denom, sdkmath.NewIntFromBigInt(amount.BigInt()))
	if err != nil {
		return nil, err
	}

	return sdk.NewCoins(coin), nil
}

// CoinsAmountOf returns the amount of denom in coins as an unsigned integer.
func CoinsAmountOf(coins sdk.Coins, denom string) sdkmath.Uint {
	amt := coins.AmountOf(denom)
	if amt.IsNil() || !amt.IsPositive() {
		return sdkmath.ZeroUint()
	}
	return sdkmath.NewUintFromBigInt(amt.BigInt())
}
