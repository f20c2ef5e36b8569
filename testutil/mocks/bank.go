package mocks

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// Bank is an in-memory bank keeper holding account and module balances.
// It is not backed by the multistore, so writes are not rolled back with a
// cache context.
type Bank struct {
	balances map[string]sdk.Coins
	supply   sdk.Coins
}

func NewBank() *Bank {
	return &Bank{balances: make(map[string]sdk.Coins), supply: sdk.NewCoins()}
}

func moduleKey(name string) string {
	return authtypes.NewModuleAddress(name).String()
}

func (b *Bank) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	b.balances[moduleKey(moduleName)] = b.balances[moduleKey(moduleName)].Add(amt...)
	b.supply = b.supply.Add(amt...)
	return nil
}

func (b *Bank) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	bal, neg := b.balances[moduleKey(moduleName)].SafeSub(amt...)
	if neg {
		return fmt.Errorf("module %s has insufficient funds to burn %s", moduleName, amt)
	}
	b.balances[moduleKey(moduleName)] = bal
	b.supply = b.supply.Sub(amt...)
	return nil
}

func (b *Bank) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.move(moduleKey(senderModule), recipientAddr.String(), amt)
}

func (b *Bank) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.move(senderAddr.String(), moduleKey(recipientModule), amt)
}

func (b *Bank) GetSupply(_ context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.supply.AmountOf(denom))
}

// Balance returns the denom balance of addr.
func (b *Bank) Balance(addr sdk.AccAddress, denom string) math.Int {
	return b.balances[addr.String()].AmountOf(denom)
}

func (b *Bank) move(from, to string, amt sdk.Coins) error {
	bal, neg := b.balances[from].SafeSub(amt...)
	if neg {
		return fmt.Errorf("%s has insufficient funds: %s < %s", from, b.balances[from], amt)
	}
	b.balances[from] = bal
	b.balances[to] = b.balances[to].Add(amt...)
	return nil
}
