package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableSizes(t *testing.T) {
	assert.Len(t, Default, '~'-First+1)
	assert.Len(t, Number, 16)
	assert.Len(t, Error, 8)
}

func TestAt(t *testing.T) {
	tests := []struct {
		name string
		i    int
		want byte
	}{
		{"first", 0, 0b00111111},
		{"last", 15, 0b01110001},
		{"negative", -1, 0},
		{"past end", 16, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Number.At(tt.i))
		})
	}
}

func TestChar(t *testing.T) {
	tests := []struct {
		name string
		c    byte
		want byte
	}{
		{"space", ' ', 0},
		{"zero", '0', 0b00111111},
		{"upper E", 'E', 0b01111001},
		{"lower r", 'r', 0b01010000},
		{"tilde", '~', 0b00000001},
		{"control char", '\n', 0},
		{"del", 0x7F, 0},
		{"high byte", 0xB0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Default.Char(tt.c))
		})
	}
}

func TestDigitsAgree(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, Number.At(i), Default.Char(byte('0'+i)), "digit %d", i)
	}
}

func TestNoGlyphUsesDP(t *testing.T) {
	// Only '.' and '!' light the decimal point on their own.
	for i, g := range Default {
		if byte(i+First) == '.' || byte(i+First) == '!' {
			continue
		}
		assert.Zero(t, g&DP, "glyph %q", rune(i+First))
	}
	for i, g := range Number {
		assert.Zero(t, g&DP, "digit %X", i)
	}
}
