package seq_test

import (
	"encoding/json"
	"iter"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/sotte/pelper/seq"
	"github.com/sotte/pelper/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

func TestFlatten(t *testing.T) {
	tests := []struct {
		name   string
		nested any
		want   []any
	}{
		{
			name:   "already flat",
			nested: []int{0, 1, 2, 3, 4},
			want:   []any{0, 1, 2, 3, 4},
		},
		{
			name:   "one level",
			nested: []any{1, []int{2, 2}},
			want:   []any{1, 2, 2},
		},
		{
			name:   "deeply nested",
			nested: []any{1, []any{2, 2}, []any{3, 3, 3, []any{4, 4, 4, 4}, 3}, 1},
			want:   []any{1, 2, 2, 3, 3, 3, 4, 4, 4, 4, 3, 1},
		},
		{
			name:   "strings are atoms",
			nested: []any{"one", []any{"two", "three", []string{"four"}}},
			want:   []any{"one", "two", "three", "four"},
		},
		{
			name:   "named string types are atoms",
			nested: []label{"a", "bc"},
			want:   []any{label("a"), label("bc")},
		},
		{
			name:   "byte slices are atoms",
			nested: []any{[]byte("hi"), json.RawMessage(`{}`)},
			want:   []any{[]byte("hi"), json.RawMessage(`{}`)},
		},
		{
			name:   "arrays are descended",
			nested: [2][2]int{{1, 2}, {3, 4}},
			want:   []any{1, 2, 3, 4},
		},
		{
			name:   "maps are leaves",
			nested: []any{map[string]int{"a": 1}},
			want:   []any{map[string]int{"a": 1}},
		},
		{
			name:   "scalar top level",
			nested: 42,
			want:   []any{42},
		},
		{
			name:   "string top level",
			nested: "text",
			want:   []any{"text"},
		},
		{
			name:   "nil top level",
			nested: nil,
			want:   []any{nil},
		},
		{
			name:   "typed sequence top level",
			nested: seq.Range(0, 5),
			want:   []any{0, 1, 2, 3, 4},
		},
		{
			name:   "typed sequence nested",
			nested: []any{1, seq.FromSlice([]int{2, 3})},
			want:   []any{1, 2, 3},
		},
		{
			name:   "sequence of slices",
			nested: seq.FromSlice([][]string{{"a", "b"}, {"c"}}),
			want:   []any{"a", "b", "c"},
		},
		{
			name:   "empty",
			nested: []any{[]any{}, []int{}},
			want:   []any{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, seq.Flatten(tc.nested))
		})
	}
}

func TestFlatten_DescendsIntoSequences(t *testing.T) {
	inner := seq.Map(seq.Range(0, 3), func(i int) any { return []int{i, i} })
	got := seq.Flatten([]any{"x", inner})
	assert.Equal(t, []any{"x", 0, 0, 1, 1, 2, 2}, got)
}

func TestFlatten_OtherFuncsAreLeaves(t *testing.T) {
	got := seq.Flatten([]any{1, strings.ToUpper, func(func(int) string) {}})
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0])
	assert.Equal(t, reflect.Func, reflect.TypeOf(got[1]).Kind())
	assert.Equal(t, reflect.Func, reflect.TypeOf(got[2]).Kind())

	var nilSeq iter.Seq[int]
	require.Len(t, seq.Flatten(nilSeq), 1)
}

func TestFlattenSeq_TypedInfiniteSequenceStops(t *testing.T) {
	nested := []any{seq.Count(0), "never reached"}
	assert.Equal(t, []any{0, 1, 2, 3}, seq.Take(seq.FlattenSeq(nested), 4))
}

func TestFlattenSeq_EarlyStop(t *testing.T) {
	nested := []any{1, []any{2, []any{3, 4}}, 5}
	assert.Equal(t, []any{1, 2, 3}, seq.Take(seq.FlattenSeq(nested), 3))
	assert.Equal(t, []any{1, 2, 3, 4, 5}, slices.Collect(seq.FlattenSeq(nested)))
}

func TestFlattenOf(t *testing.T) {
	got, err := seq.FlattenOf[int]([]any{1, []any{2, []int{3}}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	_, err = seq.FlattenOf[int]([]any{1, "two"})
	require.ErrorIs(t, err, helper.ErrUnexpectedType)
}
