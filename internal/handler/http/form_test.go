package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseForm(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]any
	}{
		{
			name: "empty",
			body: "",
			want: map[string]any{},
		},
		{
			name: "flat pairs",
			body: "a=1&b=two",
			want: map[string]any{"a": "1", "b": "two"},
		},
		{
			name: "key without value",
			body: "flag&x=",
			want: map[string]any{"flag": "", "x": ""},
		},
		{
			name: "escaped key and value",
			body: "full%20name=Ada+Lovelace&q=a%26b",
			want: map[string]any{"full name": "Ada Lovelace", "q": "a&b"},
		},
		{
			name: "nested objects",
			body: "user[name]=ada&user[address][city]=London",
			want: map[string]any{
				"user": map[string]any{
					"name":    "ada",
					"address": map[string]any{"city": "London"},
				},
			},
		},
		{
			name: "explicit list",
			body: "ids[]=1&ids[]=2",
			want: map[string]any{"ids": []any{"1", "2"}},
		},
		{
			name: "single element list",
			body: "ids[]=1",
			want: map[string]any{"ids": []any{"1"}},
		},
		{
			name: "nested list",
			body: "filter[tags][]=a&filter[tags][]=b",
			want: map[string]any{"filter": map[string]any{"tags": []any{"a", "b"}}},
		},
		{
			name: "unbalanced brackets stay literal",
			body: "a[b=1&[c]=2",
			want: map[string]any{"a[b": "1", "[c]": "2"},
		},
		{
			name: "nested key merges scalar",
			body: "a=1&a[b]=2",
			want: map[string]any{"a": map[string]any{"0": "1", "b": "2"}},
		},
		{
			name: "nested key merges list",
			body: "a[]=1&a[]=2&a[b]=3",
			want: map[string]any{"a": map[string]any{"0": "1", "1": "2", "b": "3"}},
		},
		{
			name: "list value keeps existing map",
			body: "a[b]=1&a[]=2",
			want: map[string]any{"a": map[string]any{"b": "1", "0": "2"}},
		},
		{
			name: "scalar value keeps existing map",
			body: "a[b]=1&a=2&a=3",
			want: map[string]any{"a": map[string]any{"b": "1", "0": "2", "1": "3"}},
		},
		{
			name: "empty pairs skipped",
			body: "&&a=1&&",
			want: map[string]any{"a": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseForm(tt.body)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseForm_Errors(t *testing.T) {
	_, err := parseForm("a=%zz")
	assert.Error(t, err)

	_, err = parseForm("%zz=1")
	assert.Error(t, err)
}

func TestSplitFormKey_DepthLimit(t *testing.T) {
	got := splitFormKey("a[b][c][d][e][f][g][h]")

	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "[g][h]"}, got)
}

func TestSplitFormKey(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"a", []string{"a"}},
		{"a[]", []string{"a", ""}},
		{"a[b]", []string{"a", "b"}},
		{"a[b][]", []string{"a", "b", ""}},
		{"a[b]c", []string{"a[b]c"}},
		{"[a]", []string{"[a]"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, splitFormKey(tt.key))
		})
	}
}
