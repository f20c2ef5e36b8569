package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	corestoretypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	mgtypes "github.com/mintgate-labs/mintgate/types"
	"github.com/mintgate-labs/mintgate/x/registrar/types"
)

type (
	Keeper struct {
		storeService corestoretypes.KVStoreService

		// the address capable of executing the registrar messages. Typically,
		// this should be the x/gov module account.
		authority string

		// params stores the module parameter
		params collections.Item[types.Params]
		// approvedMinters is the set of minter addresses allowed to activate
		approvedMinters collections.KeySet[[]byte]
		// approvedValidators is the set of addresses whose collateral
		// signatures count towards the quorum
		approvedValidators collections.KeySet[[]byte]
	}
)

func NewKeeper(
	storeService corestoretypes.KVStoreService,
	authority string,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	return Keeper{
		storeService: storeService,
		authority:    authority,

		params: collections.NewItem(
			sb,
			types.ParamsKey,
			"parameters",
			mgtypes.JSONValue[types.Params]("registrar_params"),
		),
		approvedMinters: collections.NewKeySet(
			sb,
			types.ApprovedMintersKeyPrefix,
			"approved_minters",
			// key: (minterAddr)
			collections.BytesKey,
		),
		approvedValidators: collections.NewKeySet(
			sb,
			types.ApprovedValidatorsKeyPrefix,
			"approved_validators",
			// key: (validatorAddr)
			collections.BytesKey,
		),
	}
}

func (k Keeper) Logger(goCtx context.Context) log.Logger {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the registrar authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}
