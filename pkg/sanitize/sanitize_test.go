package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Workplace Safety", "Workplace Safety"},
		{"tags stripped", "Hello <b>World</b>", "Hello World"},
		{"nested tags stripped", "<div><script>alert(1)</script>Safe</div>", "Safe"},
		{"whitespace trimmed", "  padded  ", "padded"},
		{"entities escaped", "Health & Safety", "Health &amp; Safety"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  K3 Training!  2024 ", "k3-training-2024"},
		{"already-a-slug", "already-a-slug"},
		{"--Multiple---Dashes--", "multiple-dashes"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.input))
	}
}
