package events

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

// OfType returns the events of ctx with the given type, in emission order.
func OfType(ctx sdk.Context, eventType string) []sdk.Event {
	var out []sdk.Event
	for _, e := range ctx.EventManager().Events() {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

// RequireLast fails unless ctx emitted an event of eventType and returns the
// last one.
func RequireLast(t *testing.T, ctx sdk.Context, eventType string) sdk.Event {
	t.Helper()
	evs := OfType(ctx, eventType)
	require.NotEmpty(t, evs, "no %s event emitted", eventType)
	return evs[len(evs)-1]
}

func RequireEventAttribute(t *testing.T, event sdk.Event, key, expectedValue string, msgAndArgs ...any) {
	t.Helper()
	for _, attr := range event.Attributes {
		if attr.Key == key {
			require.Equal(t, expectedValue, attr.Value, msgAndArgs...)
			return
		}
	}
	require.Fail(t, "Expected attribute not found", msgAndArgs...)
}
