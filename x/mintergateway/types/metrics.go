package types

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/hashicorp/go-metrics"
)

const (
	// MetricsKeyMinted counts M minted against executed proposals
	MetricsKeyMinted = "minted"
	// MetricsKeyBurned counts M repaid through BurnM
	MetricsKeyBurned = "burned"
	// MetricsKeyPenalty counts M charged as penalties, labeled by kind
	MetricsKeyPenalty = "penalty"
	// MetricsKeyExcessMinted counts excess owed M sent to the treasury
	MetricsKeyExcessMinted = "excess_minted"

	// MetricsKeyLatestIndex is the gauge of the stored continuous index
	MetricsKeyLatestIndex = "latest_index"
	// MetricsKeyLatestRate is the gauge of the stored yearly rate in bps
	MetricsKeyLatestRate = "latest_rate"

	MetricsLabelPenaltyKind = "kind"
)

func moduleLabels(extra ...metrics.Label) []metrics.Label {
	return append([]metrics.Label{telemetry.NewLabel(telemetry.MetricLabelNameModule, ModuleName)}, extra...)
}

func toFloat32(amount sdkmath.Uint) float32 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float32()
	return f
}

func RecordMinted(amount sdkmath.Uint) {
	telemetry.IncrCounterWithLabels([]string{MetricsKeyMinted}, toFloat32(amount), moduleLabels())
}

func RecordBurned(amount sdkmath.Uint) {
	telemetry.IncrCounterWithLabels([]string{MetricsKeyBurned}, toFloat32(amount), moduleLabels())
}

func RecordExcessMinted(amount sdkmath.Uint) {
	telemetry.IncrCounterWithLabels([]string{MetricsKeyExcessMinted}, toFloat32(amount), moduleLabels())
}

// RecordPenalty records a penalty of the given kind, in present M.
func RecordPenalty(kind string, amount sdkmath.Uint) {
	telemetry.IncrCounterWithLabels(
		[]string{MetricsKeyPenalty},
		toFloat32(amount),
		moduleLabels(telemetry.NewLabel(MetricsLabelPenaltyKind, kind)),
	)
}

// RecordIndexState records the index checkpoint written by UpdateIndex.
func RecordIndexState(s IndexState) {
	telemetry.SetGaugeWithLabels([]string{MetricsKeyLatestIndex}, toFloat32(s.LatestIndex), moduleLabels())
	telemetry.SetGaugeWithLabels([]string{MetricsKeyLatestRate}, float32(s.LatestRate), moduleLabels())
}
