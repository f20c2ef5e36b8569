package keeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/mintgate-labs/mintgate/testutil/datagen"
	"github.com/mintgate-labs/mintgate/testutil/events"
	testkeeper "github.com/mintgate-labs/mintgate/testutil/keeper"
	mgtypes "github.com/mintgate-labs/mintgate/types"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
	mtokentypes "github.com/mintgate-labs/mintgate/x/mtoken/types"
	"github.com/mintgate-labs/mintgate/x/ratemodel"
	registrartypes "github.com/mintgate-labs/mintgate/x/registrar/types"
)

type panickingRateModel struct{}

func (panickingRateModel) Rate(context.Context) (uint32, error) { panic("rate model exploded") }

type failingRateModel struct{}

func (failingRateModel) Rate(context.Context) (uint32, error) { return 0, errors.New("oracle offline") }

func newRateFixture(t *testing.T) *testkeeper.GatewayFixture {
	return testkeeper.NewMinterGatewayFixtureWithRates(t, func(ps ratemodel.ParamsSource) *ratemodel.Registry {
		return ratemodel.DefaultRegistry(ps, registrartypes.MinterRateModelName, registrartypes.ZeroRateModelName).
			Register("panicking", panickingRateModel{}).
			Register("failing", failingRateModel{})
	})
}

func TestCurrentIndexAfterOneYear(t *testing.T) {
	f := newRateFixture(t)
	f.SetParams(t, func(p *registrartypes.Params) {
		p.BaseMinterRate = 1_000
		p.MaxMinterRate = 1_000
	})

	index, err := f.Keeper.UpdateIndex(f.Ctx)
	require.NoError(t, err)
	require.True(t, index.Equal(mgtypes.ExpScaledOneUint()), index.String())
	require.Equal(t, uint32(1_000), f.Keeper.GetIndexState(f.Ctx).LatestRate)

	f.AdvanceTime(time.Duration(mgtypes.SecondsPerYear) * time.Second)
	current := f.Keeper.CurrentIndex(f.Ctx)
	// e^0.1 = 1.105170918...
	require.True(t, current.GTE(sdkmath.NewUint(1_105_170_000_000)), current.String())
	require.True(t, current.LTE(sdkmath.NewUint(1_105_171_000_000)), current.String())
}

func TestUpdateIndexIsIdempotent(t *testing.T) {
	f := newRateFixture(t)

	_, err := f.Keeper.UpdateIndex(f.Ctx)
	require.NoError(t, err)
	f.AdvanceTime(day)

	first, err := f.Keeper.UpdateIndex(f.Ctx)
	require.NoError(t, err)
	state := f.Keeper.GetIndexState(f.Ctx)

	f.Ctx = f.Ctx.WithEventManager(sdk.NewEventManager())
	second, err := f.Keeper.UpdateIndex(f.Ctx)
	require.NoError(t, err)
	require.True(t, first.Equal(second))
	require.Equal(t, state, f.Keeper.GetIndexState(f.Ctx))
	require.Empty(t, events.OfType(f.Ctx, types.EventTypeIndexUpdated))

	// a rate change at the same time is recorded
	f.SetParams(t, func(p *registrartypes.Params) {
		p.BaseMinterRate = 500
	})
	_, err = f.Keeper.UpdateIndex(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, uint32(500), f.Keeper.GetIndexState(f.Ctx).LatestRate)
	require.True(t, state.LatestIndex.Equal(f.Keeper.GetIndexState(f.Ctx).LatestIndex))
}

func TestIndexIsMonotonic(t *testing.T) {
	f := newRateFixture(t)
	prev := f.Keeper.CurrentIndex(f.Ctx)

	for i, rate := range []uint32{400, 0, 1_000, 40_000, 0, 250} {
		f.SetParams(t, func(p *registrartypes.Params) {
			p.BaseMinterRate = rate
			p.MaxMinterRate = registrartypes.MaxRate
		})
		_, err := f.Keeper.UpdateIndex(f.Ctx)
		require.NoError(t, err)
		f.AdvanceTime(time.Duration(i+1) * 17 * day)

		current := f.Keeper.CurrentIndex(f.Ctx)
		require.True(t, current.GTE(prev), "index decreased from %s to %s", prev, current)
		prev = current
	}
}

func TestRateFallsBackToZero(t *testing.T) {
	f := newRateFixture(t)

	for _, model := range []string{"panicking", "failing", "unregistered"} {
		f.SetParams(t, func(p *registrartypes.Params) {
			p.RateModel = model
		})
		require.Zero(t, f.Keeper.Rate(f.Ctx), model)
		_, err := f.Keeper.UpdateIndex(f.Ctx)
		require.NoError(t, err, model)
		require.Zero(t, f.Keeper.GetIndexState(f.Ctx).LatestRate, model)
	}

	f.SetParams(t, func(p *registrartypes.Params) {
		p.RateModel = registrartypes.MinterRateModelName
	})
	require.Equal(t, registrartypes.DefaultBaseMinterRate, f.Keeper.Rate(f.Ctx))
}

func TestUpdateIndexMintsExcessToTreasury(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()
	h.updateCollateral(minter, 10_000_000)
	h.mint(minter, 1_000_000)

	h.SetParams(t, func(p *registrartypes.Params) {
		p.RateModel = registrartypes.MinterRateModelName
		p.BaseMinterRate = 1_000
		p.MaxMinterRate = 1_000
	})
	_, err := h.Keeper.UpdateIndex(h.Ctx)
	require.NoError(t, err)

	h.AdvanceTime(day)
	excess, err := h.Keeper.ExcessOwedM(h.Ctx)
	require.NoError(t, err)
	require.True(t, excess.GT(sdkmath.ZeroUint()))

	h.Ctx = h.Ctx.WithEventManager(sdk.NewEventManager())
	_, err = h.Keeper.UpdateIndex(h.Ctx)
	require.NoError(t, err)

	treasury := h.Registrar.Treasury(h.Ctx)
	require.Equal(t, excess.Uint64(), h.Bank.Balance(treasury, mtokentypes.DefaultDenom).Uint64())
	require.Len(t, events.OfType(h.Ctx, types.EventTypeExcessOwedMinted), 1)
	require.Len(t, events.OfType(h.Ctx, types.EventTypeIndexUpdated), 1)

	mints := h.Ledger.CallsTo("Mint")
	last := mints[len(mints)-1]
	require.Equal(t, treasury, last.Account)
	require.True(t, excess.Equal(last.Amount))

	after, err := h.Keeper.ExcessOwedM(h.Ctx)
	require.NoError(t, err)
	require.True(t, after.IsZero())
	h.requireEffectsCommitted()
}

func TestUpdateIndexSyncsLedgerWithinBlock(t *testing.T) {
	h := newHarness(t, 1)
	minter := h.activeMinter()
	h.updateCollateral(minter, 1_000_000)

	id, err := h.Keeper.ProposeMint(h.Ctx, minter, sdkmath.NewUint(100_000), datagen.GenRandomAddress())
	require.NoError(t, err)
	h.AdvanceTime(time.Duration(registrartypes.DefaultMintDelay) * time.Second)

	// the block's first index update checkpoints the index
	_, err = h.Keeper.UpdateIndex(h.Ctx)
	require.NoError(t, err)
	syncs := len(h.Ledger.CallsTo("UpdateIndex"))

	_, _, err = h.Keeper.MintM(h.Ctx, minter, id)
	require.NoError(t, err)

	require.Len(t, h.Ledger.CallsTo("UpdateIndex"), syncs+1)
	cp := h.Token.GetCheckpoint(h.Ctx)
	require.Equal(t, uint64(100_000), h.Token.TotalSupply(h.Ctx).Uint64())
	require.True(t, cp.Supply.Equal(h.Token.TotalSupply(h.Ctx)), "checkpoint %s", cp.Supply)
	require.Equal(t, h.Now(), cp.Timestamp)
	h.requireEffectsCommitted()
}
