package interfaces

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKinds(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []Kind
		wantErr string
	}{
		{name: "empty"},
		{name: "single", input: []string{"object"}, want: []Kind{KindObject}},
		{
			name:  "trimmed_and_blank_skipped",
			input: []string{" class", "", "enum "},
			want:  []Kind{KindClass, KindEnum},
		},
		{name: "all", input: []string{"object", "all"}, want: AllKinds()},
		{name: "parameters_opt_in", input: []string{"parameters"}, want: []Kind{KindParameters}},
		{name: "unknown", input: []string{"object", "struct"}, wantErr: `unknown kind "struct"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKinds(tt.input)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAllKindsExcludesParameters(t *testing.T) {
	require.NotContains(t, AllKinds(), KindParameters)
	require.Len(t, AllKinds(), 5)
}
