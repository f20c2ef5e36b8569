package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	corestoretypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

type (
	Keeper struct {
		storeService corestoretypes.KVStoreService

		registrar  types.RegistrarKeeper
		ledger     types.TokenLedger
		rateModels types.RateModelRegistry
		verifier   types.SignatureVerifier

		// indexState is the continuous index checkpoint
		indexState collections.Item[types.IndexState]
		// mintNonce is the id of the latest mint proposal
		mintNonce collections.Item[uint64]
		// retrievalNonce is the id of the latest retrieval
		retrievalNonce collections.Item[uint64]
		// totalPrincipalOfActiveOwedM sums the principal owed by active minters
		totalPrincipalOfActiveOwedM collections.Item[sdkmath.Uint]
		// totalInactiveOwedM sums the M owed by deactivated minters
		totalInactiveOwedM collections.Item[sdkmath.Uint]
		// minters maps a minter address to its accounting record
		minters collections.Map[[]byte, types.MinterState]
		// mintProposals maps a minter address to its outstanding proposal
		mintProposals collections.Map[[]byte, types.MintProposal]
		// pendingRetrievals maps (minter, retrieval id) to the reserved amount
		pendingRetrievals collections.Map[collections.Pair[[]byte, uint64], sdkmath.Uint]
	}
)

func NewKeeper(
	storeService corestoretypes.KVStoreService,
	registrar types.RegistrarKeeper,
	ledger types.TokenLedger,
	rateModels types.RateModelRegistry,
	verifier types.SignatureVerifier,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	uintValue := mgtypes.JSONValue[sdkmath.Uint]("uint")

	return Keeper{
		storeService: storeService,
		registrar:    registrar,
		ledger:       ledger,
		rateModels:   rateModels,
		verifier:     verifier,

		indexState: collections.NewItem(
			sb,
			types.IndexStateKey,
			"index_state",
			mgtypes.JSONValue[types.IndexState]("index_state"),
		),
		mintNonce: collections.NewItem(
			sb,
			types.MintNonceKey,
			"mint_nonce",
			collections.Uint64Value,
		),
		retrievalNonce: collections.NewItem(
			sb,
			types.RetrievalNonceKey,
			"retrieval_nonce",
			collections.Uint64Value,
		),
		totalPrincipalOfActiveOwedM: collections.NewItem(
			sb,
			types.TotalPrincipalOfActiveOwedMKey,
			"total_principal_of_active_owed_m",
			uintValue,
		),
		totalInactiveOwedM: collections.NewItem(
			sb,
			types.TotalInactiveOwedMKey,
			"total_inactive_owed_m",
			uintValue,
		),
		minters: collections.NewMap(
			sb,
			types.MintersKeyPrefix,
			"minters",
			// key: (minterAddr)
			collections.BytesKey,
			mgtypes.JSONValue[types.MinterState]("minter_state"),
		),
		mintProposals: collections.NewMap(
			sb,
			types.MintProposalsKeyPrefix,
			"mint_proposals",
			// key: (minterAddr)
			collections.BytesKey,
			mgtypes.JSONValue[types.MintProposal]("mint_proposal"),
		),
		pendingRetrievals: collections.NewMap(
			sb,
			types.PendingRetrievalsKeyPrefix,
			"pending_retrievals",
			// key: (minterAddr, retrievalID)
			collections.PairKeyCodec(collections.BytesKey, collections.Uint64Key),
			uintValue,
		),
	}
}

func (k Keeper) Logger(goCtx context.Context) log.Logger {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// blockTime returns the block time in unix seconds. Times before the epoch
// read as 0.
func blockTime(ctx context.Context) uint64 {
	t := sdk.UnwrapSDKContext(ctx).HeaderInfo().Time.Unix()
	if t < 0 {
		return 0
	}
	return uint64(t)
}

func (k Keeper) getMinter(ctx context.Context, minter sdk.AccAddress) (types.MinterState, error) {
	s, err := k.minters.Get(ctx, minter)
	if errors.Is(err, collections.ErrNotFound) {
		return types.NewMinterState(), nil
	}
	return s, err
}

func (k Keeper) setMinter(ctx context.Context, minter sdk.AccAddress, s types.MinterState) error {
	return k.minters.Set(ctx, minter, s)
}

func (k Keeper) getUint(ctx context.Context, item collections.Item[sdkmath.Uint]) (sdkmath.Uint, error) {
	v, err := item.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return sdkmath.ZeroUint(), nil
	}
	return v, err
}

// addTotalPrincipal adds delta to the total active principal, failing when it
// no longer fits 112 bits.
func (k Keeper) addTotalPrincipal(ctx context.Context, delta sdkmath.Uint) error {
	total, err := k.getUint(ctx, k.totalPrincipalOfActiveOwedM)
	if err != nil {
		return err
	}
	total, err = mgtypes.SafeAdd(total, delta, mgtypes.MaxUint112())
	if err != nil {
		return err
	}
	return k.totalPrincipalOfActiveOwedM.Set(ctx, total)
}

func (k Keeper) subTotalPrincipal(ctx context.Context, delta sdkmath.Uint) error {
	total, err := k.getUint(ctx, k.totalPrincipalOfActiveOwedM)
	if err != nil {
		return err
	}
	total, err = mgtypes.SafeSub(total, delta)
	if err != nil {
		return err
	}
	return k.totalPrincipalOfActiveOwedM.Set(ctx, total)
}

func (k Keeper) addTotalInactive(ctx context.Context, delta sdkmath.Uint) error {
	total, err := k.getUint(ctx, k.totalInactiveOwedM)
	if err != nil {
		return err
	}
	total, err = mgtypes.SafeAdd(total, delta, mgtypes.MaxUint240())
	if err != nil {
		return err
	}
	return k.totalInactiveOwedM.Set(ctx, total)
}

func (k Keeper) subTotalInactive(ctx context.Context, delta sdkmath.Uint) error {
	total, err := k.getUint(ctx, k.totalInactiveOwedM)
	if err != nil {
		return err
	}
	total, err = mgtypes.SafeSub(total, delta)
	if err != nil {
		return err
	}
	return k.totalInactiveOwedM.Set(ctx, total)
}

// nextNonce increments the nonce stored in item and returns the new value.
func nextNonce(ctx context.Context, item collections.Item[uint64]) (uint64, error) {
	n, err := item.Get(ctx)
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return 0, err
	}
	n++
	if err := item.Set(ctx, n); err != nil {
		return 0, err
	}
	return n, nil
}

func (k Keeper) emitEvent(ctx context.Context, eventType string, attrs ...sdk.Attribute) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(eventType, attrs...))
}

func u64(v uint64) string {
	return fmt.Sprintf("%d", v)
}
