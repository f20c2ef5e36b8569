package mintergateway

import (
	"context"
	"time"

	"github.com/cosmos/cosmos-sdk/telemetry"

	"github.com/mintgate-labs/mintgate/x/mintergateway/keeper"
	"github.com/mintgate-labs/mintgate/x/mintergateway/types"
)

// BeginBlocker checkpoints the continuous index so accrual and excess owed M
// follow block time even in blocks without minter activity.
func BeginBlocker(ctx context.Context, k keeper.Keeper) error {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), telemetry.MetricKeyBeginBlocker)

	_, err := k.UpdateIndex(ctx)
	return err
}
