package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordWithCost(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "Numeric passcode", password: "392766", wantErr: false},
		{name: "Empty password", password: "", wantErr: false},
		{name: "Longer than bcrypt allows", password: strings.Repeat("x", 80), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPasswordWithCost(tt.password, bcrypt.MinCost)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, hash)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)
			assert.True(t, strings.HasPrefix(hash, "$2a$"))
		})
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPasswordWithCost("392766", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		want     bool
	}{
		{name: "Correct passcode", hash: hash, password: "392766", want: true},
		{name: "Wrong passcode", hash: hash, password: "000000", want: false},
		{name: "Empty passcode", hash: hash, password: "", want: false},
		{name: "Garbage hash", hash: "not-a-hash", password: "392766", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword(tt.hash, tt.password))
		})
	}
}
