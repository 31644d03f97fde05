package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "python", "python"},
		{"percent", "C%", `C\%`},
		{"underscore only", "_", `\_`},
		{"backslash", `a\b`, `a\\b`},
		{"mixed", `100%_done\`, `100\%\_done\\`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLikePattern(tt.input))
		})
	}
}
