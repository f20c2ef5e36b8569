package keeper_test

import (
	"encoding/json"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/mintgate-labs/mintgate/testutil/datagen"
	testkeeper "github.com/mintgate-labs/mintgate/testutil/keeper"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	h := newHarness(t, 1)

	active := h.activeMinter()
	h.updateCollateral(active, 1_000_000)
	h.mint(active, 300_000)
	_, err := h.Keeper.ProposeMint(h.Ctx, active, sdkmath.NewUint(10_000), datagen.GenRandomAddress())
	require.NoError(t, err)
	_, err = h.Keeper.ProposeRetrieval(h.Ctx, active, sdkmath.NewUint(5_000))
	require.NoError(t, err)

	retired := h.activeMinter()
	h.updateCollateral(retired, 500_000)
	h.mint(retired, 100_000)
	require.NoError(t, h.Registrar.RevokeMinter(h.Ctx, retired))
	_, err = h.Keeper.DeactivateMinter(h.Ctx, retired, retired)
	require.NoError(t, err)

	exported, err := h.Keeper.ExportGenesis(h.Ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Minters, 2)
	require.Len(t, exported.MintProposals, 1)
	require.Len(t, exported.PendingRetrievals, 1)
	require.Equal(t, uint64(3), exported.MintNonce)
	require.Equal(t, uint64(1), exported.RetrievalNonce)

	bz, err := json.Marshal(exported)
	require.NoError(t, err)
	var decoded types.GenesisState
	require.NoError(t, json.Unmarshal(bz, &decoded))

	fresh := testkeeper.NewMinterGatewayFixture(t)
	require.NoError(t, fresh.Keeper.InitGenesis(fresh.Ctx, decoded))
	reexported, err := fresh.Keeper.ExportGenesis(fresh.Ctx)
	require.NoError(t, err)

	uintEqual := cmp.Comparer(func(a, b sdkmath.Uint) bool { return a.Equal(b) })
	require.Empty(t, cmp.Diff(*exported, *reexported, uintEqual))

	require.True(t, fresh.Keeper.IsActiveMinter(fresh.Ctx, active))
	require.True(t, fresh.Keeper.IsDeactivatedMinter(fresh.Ctx, retired))
	require.Equal(t, uint64(100_000), fresh.Keeper.InactiveOwedMOf(fresh.Ctx, retired).Uint64())
}

func TestInitGenesisRejectsInconsistentTotals(t *testing.T) {
	f := testkeeper.NewMinterGatewayFixture(t)
	gs := types.DefaultGenesis()
	gs.TotalPrincipalOfActiveOwedM = sdkmath.NewUint(1)

	require.ErrorIs(t, f.Keeper.InitGenesis(f.Ctx, *gs), types.ErrInvalidGenesis)
}
