package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantLen int
	}{
		{"128-bit token", TokenSize128, 22},
		{"256-bit token", TokenSize256, 43},
		{"custom size", 24, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.Len(t, token, tt.wantLen)
			require.True(t, IsURLSafe(token))

			token2, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEqual(t, token, token2)
		})
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
	require.Panics(t, func() { MustGenerateToken(0) })
}

func TestGenerateInviteToken(t *testing.T) {
	seen := make(map[string]struct{}, 200)
	for range 200 {
		token, err := GenerateInviteToken()
		require.NoError(t, err)
		require.Len(t, token, InviteTokenLength)
		require.True(t, IsURLSafe(token), token)
		require.NotContains(t, seen, token)
		seen[token] = struct{}{}
	}
}

func TestIsURLSafe(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"abcXYZ019-_", true},
		{"", false},
		{"has space", false},
		{"slash/", false},
		{"plus+", false},
		{"dot.", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, IsURLSafe(tt.in))
		})
	}
}

func TestFingerprintToken(t *testing.T) {
	fp1a := FingerprintToken("test-token-1")
	fp1b := FingerprintToken("test-token-1")
	fp2 := FingerprintToken("test-token-2")

	require.Equal(t, fp1a, fp1b)
	require.NotEqual(t, fp1a, fp2)
	require.Len(t, fp1a, 43)
	require.Equal(t, fp1a[:8], ShortFingerprint("test-token-1"))
}
