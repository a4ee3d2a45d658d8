package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillswap/skillswap/internal/models"
)

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name     string
		teach    []string
		learn    []string
		complete bool
	}{
		{"both empty", nil, nil, false},
		{"teach only", []string{"Python"}, nil, true},
		{"learn only", nil, []string{"Guitar"}, true},
		{"both set", []string{"Python"}, []string{"Guitar"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{
				TeachSkills: models.StringSlice(tt.teach),
				LearnSkills: models.StringSlice(tt.learn),
			}
			assert.Equal(t, tt.complete, p.IsComplete())
		})
	}
}

func TestNormalizeSkills(t *testing.T) {
	assert.Equal(t, []string{"Python", "Guitar"}, NormalizeSkills([]string{"Python", "Guitar", "Python"}))
	assert.Equal(t, []string{"Python"}, NormalizeSkills([]string{"", "Python", ""}))
	assert.Empty(t, NormalizeSkills(nil))

	// Order of first occurrence is preserved.
	assert.Equal(t, []string{"Go", "Rust", "SQL"}, NormalizeSkills([]string{"Go", "Rust", "Go", "SQL", "Rust"}))
}
