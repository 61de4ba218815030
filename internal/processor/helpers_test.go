package processor

import (
	"testing"

	"github.com/evanrichards/tsorder/internal/config"
	"github.com/evanrichards/tsorder/internal/sorting/interfaces"

	"github.com/stretchr/testify/require"
)

func newTestProcessor(kinds ...interfaces.Kind) *Processor {
	return NewProcessor(Options{Defaults: config.Defaults(), Kinds: kinds})
}

func sortTS(t *testing.T, input string) ProcessResult {
	t.Helper()
	res, err := newTestProcessor().ProcessContent(t.Context(), "test.ts", TypeScript, []byte(input))
	require.NoError(t, err)
	return res
}

// sortCase expects input to become want; an empty want means input is
// already sorted.
type sortCase struct {
	name  string
	input string
	want  string
}

func runSortCases(t *testing.T, tests []sortCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := sortTS(t, tt.input)
			if tt.want == "" {
				require.False(t, res.Changed, "unexpected change:\n%s", res.Output)
				require.Empty(t, res.Diagnostics)
				require.Equal(t, tt.input, string(res.Output))
				return
			}
			require.True(t, res.Changed)
			require.NotEmpty(t, res.Diagnostics)
			require.Equal(t, tt.want, string(res.Output))

			again := sortTS(t, string(res.Output))
			require.False(t, again.Changed, "output is not stable:\n%s", again.Output)
		})
	}
}
