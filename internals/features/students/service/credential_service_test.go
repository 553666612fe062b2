package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveUsername(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"nama dua kata", "Ayu Lestari", "ayu_lestari"},
		{"huruf besar semua", "BUDI", "budi"},
		{"spasi pinggir dibuang", "  Citra Dewi ", "citra_dewi"},
		{"tiga kata", "Dimas Adi Nugroho", "dimas_adi_nugroho"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveUsername(tt.in))
		})
	}
}

func TestGeneratePassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		pw, err := GeneratePassword()
		require.NoError(t, err)
		assert.Len(t, pw, passwordLength)
		for _, r := range pw {
			assert.True(t, strings.ContainsRune(passwordChars, r), "karakter di luar alfanumerik: %q", r)
		}
		seen[pw] = true
	}
	// 20 password acak tidak mungkin semuanya identik
	assert.Greater(t, len(seen), 1)
}
