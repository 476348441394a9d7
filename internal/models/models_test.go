package models

import (
	"strings"
	"testing"
)

func TestPostExcerpt(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "short text unchanged",
			text:     "hello",
			expected: "hello",
		},
		{
			name:     "exactly fifteen runes",
			text:     "123456789012345",
			expected: "123456789012345",
		},
		{
			name:     "long text truncated to fifteen",
			text:     "this is a rather long post body",
			expected: "this is a rathe",
		},
		{
			name:     "multibyte runes counted as runes",
			text:     strings.Repeat("ф", 20),
			expected: strings.Repeat("ф", 15),
		},
		{
			name:     "empty text",
			text:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Post{Text: tt.text}
			if got := p.Excerpt(); got != tt.expected {
				t.Errorf("Excerpt() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCommentExcerpt(t *testing.T) {
	long := strings.Repeat("x", 80)

	c := &Comment{Text: long}
	if got := c.Excerpt(); got != strings.Repeat("x", 50) {
		t.Errorf("Excerpt() = %q, want 50 runes", got)
	}

	c = &Comment{Text: "fine as is"}
	if got := c.Excerpt(); got != "fine as is" {
		t.Errorf("Excerpt() = %q, want unchanged text", got)
	}
}

func TestTableNames(t *testing.T) {
	tests := []struct {
		name     string
		model    interface{ TableName() string }
		expected string
	}{
		{"user", User{}, "quill_users"},
		{"group", Group{}, "quill_groups"},
		{"post", Post{}, "quill_posts"},
		{"comment", Comment{}, "quill_comments"},
		{"follow", Follow{}, "quill_follows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.TableName(); got != tt.expected {
				t.Errorf("TableName() = %q, want %q", got, tt.expected)
			}
		})
	}
}
