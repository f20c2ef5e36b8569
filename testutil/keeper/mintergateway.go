package keeper

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/mintgate-labs/mintgate/crypto/ecdsa"
	"github.com/mintgate-labs/mintgate/testutil/mocks"
	"github.com/mintgate-labs/mintgate/testutil/store"
	"github.com/mintgate-labs/mintgate/x/mintergateway/keeper"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
	mtokenkeeper "github.com/mintgate-labs/mintgate/x/mtoken/keeper"
	mtokentypes "github.com/mintgate-labs/mintgate/x/mtoken/types"
	"github.com/mintgate-labs/mintgate/x/ratemodel"
	registrarkeeper "github.com/mintgate-labs/mintgate/x/registrar/keeper"
	registrartypes "github.com/mintgate-labs/mintgate/x/registrar/types"
)

// GatewayGenesisTime is the block time minter gateway fixtures start at.
var GatewayGenesisTime = time.Unix(1_700_000_000, 0).UTC()

// GatewayFixture wires a minter gateway to a real registrar and M token
// backed by an in-memory bank.
type GatewayFixture struct {
	Ctx        sdk.Context
	Keeper     keeper.Keeper
	Registrar  registrarkeeper.Keeper
	Token      mtokenkeeper.Keeper
	Bank       *mocks.Bank
	Ledger     *mocks.Ledger
	RateModels *ratemodel.Registry
}

// NewMinterGatewayFixture builds a fixture using the default rate models. The
// registrar starts from its default params.
func NewMinterGatewayFixture(t testing.TB) *GatewayFixture {
	return NewMinterGatewayFixtureWithRates(t, nil)
}

// NewMinterGatewayFixtureWithRates builds a fixture whose rate model registry
// is built by newRegistry, or the default registry when newRegistry is nil.
func NewMinterGatewayFixtureWithRates(t testing.TB, newRegistry func(ratemodel.ParamsSource) *ratemodel.Registry) *GatewayFixture {
	services, stateStore := store.NewStoreServices(t, registrartypes.StoreKey, mtokentypes.StoreKey, types.StoreKey)
	ctx := store.NewContext(stateStore, GatewayGenesisTime)

	registrar := NewRegistrarKeeperWithStoreService(t, ctx, services[registrartypes.StoreKey])
	bank := mocks.NewBank()
	token := NewMTokenKeeperWithStoreService(t, ctx, services[mtokentypes.StoreKey], bank)
	ledger := mocks.NewLedger(token)

	var rates *ratemodel.Registry
	if newRegistry != nil {
		rates = newRegistry(registrar)
	} else {
		rates = ratemodel.DefaultRegistry(registrar, registrartypes.MinterRateModelName, registrartypes.ZeroRateModelName)
	}

	k := keeper.NewKeeper(services[types.StoreKey], registrar, ledger, rates, ecdsa.Verifier{})
	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return &GatewayFixture{
		Ctx:        ctx,
		Keeper:     k,
		Registrar:  registrar,
		Token:      token,
		Bank:       bank,
		Ledger:     ledger,
		RateModels: rates,
	}
}

// SetParams replaces the registrar params after applying update to the
// current ones.
func (f *GatewayFixture) SetParams(t testing.TB, update func(p *registrartypes.Params)) {
	p := f.Registrar.GetParams(f.Ctx)
	update(&p)
	require.NoError(t, f.Registrar.SetParams(f.Ctx, p))
}

// AdvanceTime moves the block time forward by d.
func (f *GatewayFixture) AdvanceTime(d time.Duration) {
	f.SetTime(f.Ctx.HeaderInfo().Time.Add(d))
}

// SetTime sets the block time.
func (f *GatewayFixture) SetTime(t time.Time) {
	hi := f.Ctx.HeaderInfo()
	hi.Time = t
	f.Ctx = f.Ctx.WithHeaderInfo(hi).WithBlockTime(t)
}

// Now returns the block time in unix seconds.
func (f *GatewayFixture) Now() uint64 {
	return uint64(f.Ctx.HeaderInfo().Time.Unix())
}
