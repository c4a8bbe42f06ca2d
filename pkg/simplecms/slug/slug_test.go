package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simplecms/simple-cms/pkg/simplecms/slug"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple title", input: "My Blog Post!", want: "my-blog-post"},
		{name: "multiple spaces and symbols", input: "Hello   World & More", want: "hello-world-more"},
		{name: "already a slug", input: "already-a-slug", want: "already-a-slug"},
		{name: "underscores become hyphens", input: "snake_case_title", want: "snake-case-title"},
		{name: "mixed separators collapse", input: "a -_ b", want: "a-b"},
		{name: "leading and trailing noise", input: "  --Hello--  ", want: "hello"},
		{name: "digits preserved", input: "Top 10 Posts of 2024", want: "top-10-posts-of-2024"},
		{name: "unicode stripped", input: "Café ☕ Culture", want: "caf-culture"},
		{name: "only symbols", input: "!!!", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Make(tt.input))
		})
	}
}

// Make is idempotent: running it over its own output changes nothing.
func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"My Blog Post!", "Hello   World & More", "a_b c-d", "2024 Review"}
	for _, in := range inputs {
		once := slug.Make(in)
		assert.Equal(t, once, slug.Make(once), "input %q", in)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"valid-slug", true},
		{"a", true},
		{"a1-b2-c3", true},
		{"123", true},
		{"", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--hyphen", false},
		{"Upper-Case", false},
		{"with space", false},
		{"under_score", false},
		{"café", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.IsValid(tt.slug))
		})
	}
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "my-post-1", slug.WithSuffix("my-post", 1))
	assert.Equal(t, "my-post-42", slug.WithSuffix("my-post", 42))
	assert.True(t, slug.IsValid(slug.WithSuffix("my-post", 7)))
}
