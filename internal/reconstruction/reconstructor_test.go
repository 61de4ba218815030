package reconstruction

import (
	"testing"

	"github.com/evanrichards/tsorder/internal/sorting"

	"github.com/stretchr/testify/require"
)

func edit(start, end int, text string) sorting.Edit {
	return sorting.Edit{Span: sorting.Span{Start: start, End: end}, Text: text}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		content string
		edits   []sorting.Edit
		want    string
	}{
		{
			name:    "no_edits",
			content: "abc",
			want:    "abc",
		},
		{
			name:    "single_replacement",
			content: "b, a",
			edits:   []sorting.Edit{edit(0, 4, "a, b")},
			want:    "a, b",
		},
		{
			name:    "unordered_edits",
			content: "x = [2, 1]; y = [4, 3];",
			edits: []sorting.Edit{
				edit(17, 21, "3, 4"),
				edit(5, 9, "1, 2"),
			},
			want: "x = [1, 2]; y = [3, 4];",
		},
		{
			name:    "insertion_and_deletion",
			content: "abcdef",
			edits: []sorting.Edit{
				edit(0, 0, ">"),
				edit(2, 4, ""),
			},
			want: ">abef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply([]byte(tt.content), tt.edits)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(got))
		})
	}
}

func TestApplyErrors(t *testing.T) {
	_, err := Apply([]byte("abcdef"), []sorting.Edit{edit(0, 4, "x"), edit(2, 5, "y")})
	require.ErrorIs(t, err, ErrOverlappingEdits)

	_, err = Apply([]byte("abc"), []sorting.Edit{edit(1, 10, "x")})
	require.Error(t, err)

	_, err = Apply([]byte("abc"), []sorting.Edit{edit(2, 1, "x")})
	require.Error(t, err)
}

func TestDisjoint(t *testing.T) {
	outer := edit(0, 20, "outer")
	inner := edit(5, 10, "inner")
	after := edit(20, 25, "after")
	sibling := edit(30, 40, "sibling")

	apply, deferred := Disjoint([]sorting.Edit{sibling, inner, after, outer})
	require.Equal(t, []sorting.Edit{outer, after, sibling}, apply)
	require.Equal(t, []sorting.Edit{inner}, deferred)

	apply, deferred = Disjoint(nil)
	require.Empty(t, apply)
	require.Empty(t, deferred)
}
