package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

// RegisterInvariants registers all mintergateway invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "owed-conservation", OwedConservationInvariant(k))
	ir.RegisterRoute(types.ModuleName, "retrieval-conservation", RetrievalConservationInvariant(k))
	ir.RegisterRoute(types.ModuleName, "minter-lifecycle", LifecycleInvariant(k))
}

// AllInvariants runs all invariants of the mintergateway module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, inv := range []sdk.Invariant{
			OwedConservationInvariant(k),
			RetrievalConservationInvariant(k),
			LifecycleInvariant(k),
		} {
			if res, broken := inv(ctx); broken {
				return res, true
			}
		}
		return "", false
	}
}

// OwedConservationInvariant checks that the global totals equal the sums over
// all minters.
func OwedConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		principal, inactive := sdkmath.ZeroUint(), sdkmath.ZeroUint()
		err := k.minters.Walk(ctx, nil, func(_ []byte, s types.MinterState) (bool, error) {
			principal = principal.Add(s.PrincipalOfActiveOwedM)
			inactive = inactive.Add(s.InactiveOwedM)
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "owed conservation", err.Error()), true
		}

		totalPrincipal := k.TotalPrincipalOfActiveOwedM(ctx)
		totalInactive := k.TotalInactiveOwedM(ctx)
		broken := !principal.Equal(totalPrincipal) || !inactive.Equal(totalInactive)

		return sdk.FormatInvariant(types.ModuleName, "owed conservation",
			fmt.Sprintf(
				"\tsum of minters principal: %s\n"+
					"\ttotal principal:          %s\n"+
					"\tsum of minters inactive:  %s\n"+
					"\ttotal inactive:           %s\n",
				principal, totalPrincipal, inactive, totalInactive)), broken
	}
}

// RetrievalConservationInvariant checks that the pending total of every
// minter equals the sum of its pending retrievals.
func RetrievalConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		sums := make(map[string]sdkmath.Uint)
		err := k.pendingRetrievals.Walk(ctx, nil, func(key collections.Pair[[]byte, uint64], amount sdkmath.Uint) (bool, error) {
			minter := string(key.K1())
			if sum, ok := sums[minter]; ok {
				sums[minter] = sum.Add(amount)
			} else {
				sums[minter] = amount
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "retrieval conservation", err.Error()), true
		}

		var msg string
		broken := false
		err = k.minters.Walk(ctx, nil, func(addr []byte, s types.MinterState) (bool, error) {
			sum, ok := sums[string(addr)]
			if !ok {
				sum = sdkmath.ZeroUint()
			}
			delete(sums, string(addr))
			if !sum.Equal(s.TotalPendingRetrievals) {
				broken = true
				msg += fmt.Sprintf("\tminter %s: pending %s, sum of retrievals %s\n",
					sdk.AccAddress(addr), s.TotalPendingRetrievals, sum)
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "retrieval conservation", err.Error()), true
		}
		if len(sums) > 0 {
			broken = true
			msg += fmt.Sprintf("\t%d minters have retrievals but no record\n", len(sums))
		}

		return sdk.FormatInvariant(types.ModuleName, "retrieval conservation", msg), broken
	}
}

// LifecycleInvariant checks that no minter is both active and deactivated
// and that deactivated minters carry no active principal.
func LifecycleInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		broken := false
		err := k.minters.Walk(ctx, nil, func(addr []byte, s types.MinterState) (bool, error) {
			if s.IsActive && s.IsDeactivated {
				broken = true
				msg += fmt.Sprintf("\tminter %s is active and deactivated\n", sdk.AccAddress(addr))
			}
			if s.IsDeactivated && !s.PrincipalOfActiveOwedM.IsZero() {
				broken = true
				msg += fmt.Sprintf("\tdeactivated minter %s owes principal %s\n", sdk.AccAddress(addr), s.PrincipalOfActiveOwedM)
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "minter lifecycle", err.Error()), true
		}
		return sdk.FormatInvariant(types.ModuleName, "minter lifecycle", msg), broken
	}
}
