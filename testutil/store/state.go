package store

import (
	"testing"
	"time"

	"cosmossdk.io/core/header"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

// TestChainID is the chain id set on every test context.
const TestChainID = "mintgate-test-1"

// NewStoreServices mounts one IAVL store per module name on a fresh in-memory
// multistore and returns a KV store service for each.
func NewStoreServices(t testing.TB, moduleNames ...string) (map[string]corestore.KVStoreService, storetypes.CommitMultiStore) {
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewTestLogger(t), storemetrics.NewNoOpMetrics())

	services := make(map[string]corestore.KVStoreService, len(moduleNames))
	for _, name := range moduleNames {
		storeKey := storetypes.NewKVStoreKey(name)
		stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
		services[name] = runtime.NewKVStoreService(storeKey)
	}
	require.NoError(t, stateStore.LoadLatestVersion())

	return services, stateStore
}

func NewStoreService(t testing.TB, moduleName string) (kvStore corestore.KVStoreService, stateStore storetypes.CommitMultiStore) {
	services, stateStore := NewStoreServices(t, moduleName)
	return services[moduleName], stateStore
}

// NewContext wraps stateStore in a context whose block time is blockTime.
func NewContext(stateStore storetypes.CommitMultiStore, blockTime time.Time) sdk.Context {
	ctx := sdk.NewContext(stateStore, cmtproto.Header{ChainID: TestChainID, Time: blockTime}, false, log.NewNopLogger())
	return ctx.WithHeaderInfo(header.Info{ChainID: TestChainID, Time: blockTime})
}

func NewStoreWithCtx(t testing.TB, moduleName string) (ctx sdk.Context, kvStore corestore.KVStoreService) {
	kvStore, stateStore := NewStoreService(t, moduleName)
	return NewContext(stateStore, time.Unix(0, 0).UTC()), kvStore
}
