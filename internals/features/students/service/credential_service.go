package service

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	passwordChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	passwordLength = 8
)

// DeriveUsername menurunkan username dari nama siswa: lowercase, spasi → underscore.
// Hanya dipanggil saat create; rename siswa tidak mengubah username login.
func DeriveUsername(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// GeneratePassword membuat password acak 8 karakter alfanumerik.
// Plaintext hanya dikembalikan sekali ke pemanggil; yang disimpan cuma hash.
func GeneratePassword() (string, error) {
	b := make([]byte, passwordLength)
	max := big.NewInt(int64(len(passwordChars)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = passwordChars[n.Int64()]
	}
	return string(b), nil
}
