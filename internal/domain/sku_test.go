package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSKU(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dashes stripped", "DZ5485-612", "dz5485612"},
		{"already normalized", "dz5485612", "dz5485612"},
		{"spaces and slashes stripped", "CT 8532/104", "ct8532104"},
		{"mixed case", "Dd1391-100", "dd1391100"},
		{"empty", "", ""},
		{"only separators", "--- ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSKU(tt.in))
		})
	}
}

func TestNormalizeSKU_EquivalentSpellingsCollide(t *testing.T) {
	assert.Equal(t, NormalizeSKU("DZ5485-612"), NormalizeSKU("dz5485612"))
}
