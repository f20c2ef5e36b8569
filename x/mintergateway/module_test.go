package mintergateway_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/mintgate-labs/mintgate/testutil/keeper"
	mgtypes "github.com/mintgate-labs/mintgate/types"
	"github.com/mintgate-labs/mintgate/x/mintergateway"
	registrartypes "github.com/mintgate-labs/mintgate/x/registrar/types"
)

func TestBeginBlockerCheckpointsIndex(t *testing.T) {
	f := testkeeper.NewMinterGatewayFixture(t)
	am := mintergateway.NewAppModule(f.Keeper)

	f.AdvanceTime(24 * time.Hour)
	require.NoError(t, am.BeginBlock(f.Ctx))

	s := f.Keeper.GetIndexState(f.Ctx)
	require.Equal(t, f.Now(), s.LatestUpdateTimestamp)
	require.Equal(t, registrartypes.DefaultBaseMinterRate, s.LatestRate)

	// the stored rate only starts accruing from this checkpoint
	require.True(t, s.LatestIndex.Equal(mgtypes.ExpScaledOneUint()))

	f.AdvanceTime(24 * time.Hour)
	require.NoError(t, mintergateway.BeginBlocker(f.Ctx, f.Keeper))
	require.True(t, f.Keeper.GetIndexState(f.Ctx).LatestIndex.GT(s.LatestIndex))
}

func TestGenesisJSONRoundTrip(t *testing.T) {
	f := testkeeper.NewMinterGatewayFixture(t)
	am := mintergateway.NewAppModule(f.Keeper)

	bz := am.DefaultGenesis(nil)
	require.NoError(t, am.ValidateGenesis(nil, nil, bz))

	am.InitGenesis(f.Ctx, nil, bz)
	exported := am.ExportGenesis(f.Ctx, nil)
	require.NoError(t, am.ValidateGenesis(nil, nil, exported))
}
