package keeper

import (
	"testing"

	corestore "cosmossdk.io/core/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/mintgate-labs/mintgate/testutil/store"
	"github.com/mintgate-labs/mintgate/x/registrar/keeper"
	"github.com/mintgate-labs/mintgate/x/registrar/types"
)

// GovAuthority is the authority every test keeper is built with.
var GovAuthority = authtypes.NewModuleAddress(govtypes.ModuleName)

func NewRegistrarKeeperWithStoreService(t testing.TB, ctx sdk.Context, storeService corestore.KVStoreService) keeper.Keeper {
	k := keeper.NewKeeper(storeService, GovAuthority.String())

	// Initialize params
	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))

	return k
}

func NewRegistrarKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	ctx, storeService := store.NewStoreWithCtx(t, types.StoreKey)
	return NewRegistrarKeeperWithStoreService(t, ctx, storeService), ctx
}
