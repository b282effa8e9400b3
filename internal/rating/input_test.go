package rating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCandidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		current Value
		index   int
		want    Value
	}{
		{name: "same index clears", current: IntValue(3), index: 3, want: IntValue(0)},
		{name: "lower index selects", current: IntValue(3), index: 1, want: IntValue(1)},
		{name: "higher index selects", current: IntValue(3), index: 5, want: IntValue(5)},
		{name: "from zero", current: IntValue(0), index: 1, want: IntValue(1)},
		{name: "from NaN", current: NaN(), index: 2, want: IntValue(2)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Candidate(tc.current, tc.index))
		})
	}
}

func TestInputHandlerIgnoresInactiveWidget(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	w, rec := newWidget(t, "2")
	NewInputHandler(w).Handle(ctx, ActivationEvent{Target: "3"})
	InputHandler{}.Handle(ctx, ActivationEvent{Target: "3"})

	require.Empty(t, rec.events)
	require.Equal(t, "2", w.Element().Text())
}

func TestInputHandlerRespectsResolvedLimit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	w, rec := newWidget(t, "1")
	w.Element().SetOverride(`{"topLimit": 10}`)
	require.NoError(t, w.Init(ctx))

	NewInputHandler(w).Handle(ctx, ActivationEvent{Target: "10"})
	require.Equal(t, IntValue(10), w.Value())

	NewInputHandler(w).Handle(ctx, ActivationEvent{Target: "11"})
	require.Equal(t, IntValue(10), w.Value())
	require.Equal(t, 1, rec.count(changedType))
}
