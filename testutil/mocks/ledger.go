package mocks

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

// LedgerCall records one call into the token ledger.
type LedgerCall struct {
	Method           string
	Account          sdk.AccAddress
	Amount           sdkmath.Uint
	EffectsCommitted bool
}

// Ledger wraps a token ledger, recording every state changing call and
// whether the caller had committed its own writes first. Setting FailOn makes
// the named method fail after the wrapped ledger was called.
type Ledger struct {
	types.TokenLedger

	Calls  []LedgerCall
	FailOn string
}

func NewLedger(inner types.TokenLedger) *Ledger {
	return &Ledger{TokenLedger: inner}
}

func (l *Ledger) record(ctx context.Context, method string, account sdk.AccAddress, amount sdkmath.Uint) error {
	l.Calls = append(l.Calls, LedgerCall{
		Method:           method,
		Account:          account,
		Amount:           amount,
		EffectsCommitted: types.EffectsCommitted(ctx),
	})
	if l.FailOn == method {
		return fmt.Errorf("ledger %s failed", method)
	}
	return nil
}

func (l *Ledger) Mint(ctx context.Context, recipient sdk.AccAddress, amount sdkmath.Uint) error {
	if err := l.TokenLedger.Mint(ctx, recipient, amount); err != nil {
		return err
	}
	return l.record(ctx, "Mint", recipient, amount)
}

func (l *Ledger) Burn(ctx context.Context, payer sdk.AccAddress, amount sdkmath.Uint) error {
	if err := l.TokenLedger.Burn(ctx, payer, amount); err != nil {
		return err
	}
	return l.record(ctx, "Burn", payer, amount)
}

func (l *Ledger) UpdateIndex(ctx context.Context) error {
	if err := l.TokenLedger.UpdateIndex(ctx); err != nil {
		return err
	}
	return l.record(ctx, "UpdateIndex", nil, sdkmath.ZeroUint())
}

// CallsTo returns the recorded calls of method.
func (l *Ledger) CallsTo(method string) []LedgerCall {
	var out []LedgerCall
	for _, c := range l.Calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}
