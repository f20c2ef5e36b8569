package keeper

import (
	"testing"

	corestore "cosmossdk.io/core/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/mintgate-labs/mintgate/testutil/store"
	"github.com/mintgate-labs/mintgate/x/mtoken/keeper"
	"github.com/mintgate-labs/mintgate/x/mtoken/types"
)

func NewMTokenKeeperWithStoreService(t testing.TB, ctx sdk.Context, storeService corestore.KVStoreService, bk types.BankKeeper) keeper.Keeper {
	k := keeper.NewKeeper(storeService, bk)

	// Initialize params
	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))

	return k
}

func NewMTokenKeeper(t testing.TB, bk types.BankKeeper) (keeper.Keeper, sdk.Context) {
	ctx, storeService := store.NewStoreWithCtx(t, types.StoreKey)
	return NewMTokenKeeperWithStoreService(t, ctx, storeService, bk), ctx
}
