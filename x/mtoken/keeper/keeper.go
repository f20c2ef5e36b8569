package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	corestoretypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
	"github.com/mintgate-labs/mintgate/x/mtoken/types"
)

// Keeper of the M token ledger. Balances live in x/bank; this module owns
// minting, burning and the supply checkpoint.
type Keeper struct {
	storeService corestoretypes.KVStoreService
	bankKeeper   types.BankKeeper

	params     collections.Item[types.Params]
	checkpoint collections.Item[types.Checkpoint]
}

// NewKeeper creates a new mtoken Keeper instance.
func NewKeeper(
	storeService corestoretypes.KVStoreService,
	bankKeeper types.BankKeeper,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	return Keeper{
		storeService: storeService,
		bankKeeper:   bankKeeper,

		params: collections.NewItem(
			sb,
			types.ParamsKey,
			"parameters",
			mgtypes.JSONValue[types.Params]("mtoken_params"),
		),
		checkpoint: collections.NewItem(
			sb,
			types.CheckpointKey,
			"checkpoint",
			mgtypes.JSONValue[types.Checkpoint]("mtoken_checkpoint"),
		),
	}
}

func (k Keeper) Logger(goCtx context.Context) log.Logger {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// SetParams sets the x/mtoken module parameters.
func (k Keeper) SetParams(ctx context.Context, p types.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return k.params.Set(ctx, p)
}

// GetParams returns the current x/mtoken module parameters.
func (k Keeper) GetParams(ctx context.Context) (p types.Params) {
	p, err := k.params.Get(ctx)
	if err != nil {
		panic(err)
	}
	return p
}

// GetCheckpoint returns the supply recorded at the latest index update.
func (k Keeper) GetCheckpoint(ctx context.Context) types.Checkpoint {
	cp, err := k.checkpoint.Get(ctx)
	if err != nil {
		return types.Checkpoint{Supply: sdkmath.ZeroUint()}
	}
	return cp
}

// Mint creates amount M and credits it to recipient.
func (k Keeper) Mint(ctx context.Context, recipient sdk.AccAddress, amount sdkmath.Uint) error {
	if recipient.Empty() {
		return types.ErrInvalidAccount.Wrap("empty recipient")
	}
	coins, err := mgtypes.UintToCoins(k.GetParams(ctx).Denom, amount)
	if err != nil {
		return types.ErrInvalidAmount.Wrap(err.Error())
	}
	if coins.Empty() {
		return nil
	}

	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return err
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
		return err
	}

	if amount.BigInt().IsInt64() {
		defer telemetry.IncrCounter(float32(amount.Uint64()), types.ModuleName, "minted")
	}
	k.emitTransfer(ctx, types.EventTypeMint, recipient, amount)
	return nil
}

// Burn removes amount M from payer.
func (k Keeper) Burn(ctx context.Context, payer sdk.AccAddress, amount sdkmath.Uint) error {
	if payer.Empty() {
		return types.ErrInvalidAccount.Wrap("empty payer")
	}
	coins, err := mgtypes.UintToCoins(k.GetParams(ctx).Denom, amount)
	if err != nil {
		return types.ErrInvalidAmount.Wrap(err.Error())
	}
	if coins.Empty() {
		return nil
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, payer, types.ModuleName, coins); err != nil {
		return err
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins); err != nil {
		return err
	}

	if amount.BigInt().IsInt64() {
		defer telemetry.IncrCounter(float32(amount.Uint64()), types.ModuleName, "burned")
	}
	k.emitTransfer(ctx, types.EventTypeBurn, payer, amount)
	return nil
}

// TotalSupply returns the M supply tracked by x/bank.
func (k Keeper) TotalSupply(ctx context.Context) sdkmath.Uint {
	denom := k.GetParams(ctx).Denom
	return mgtypes.CoinsAmountOf(sdk.Coins{k.bankKeeper.GetSupply(ctx, denom)}, denom)
}

// UpdateIndex records the current supply as the latest checkpoint. It is
// called by the minter gateway after every index update.
func (k Keeper) UpdateIndex(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cp := types.Checkpoint{
		Supply:    k.TotalSupply(ctx),
		Timestamp: uint64(sdkCtx.HeaderInfo().Time.Unix()),
	}
	if err := k.checkpoint.Set(ctx, cp); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeIndexUpdate,
			sdk.NewAttribute(types.AttributeKeySupply, cp.Supply.String()),
			sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", cp.Timestamp)),
		),
	)
	return nil
}

func (k Keeper) emitTransfer(ctx context.Context, eventType string, account sdk.AccAddress, amount sdkmath.Uint) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
			sdk.NewAttribute(sdk.AttributeKeyAmount, amount.String()),
		),
	)
}
