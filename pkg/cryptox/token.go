package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Token sizes in raw bytes before encoding.
const (
	TokenSize128 = 16 // 22 chars
	TokenSize256 = 32 // 43 chars
)

// InviteTokenLength is the length of a response-link token. 21 characters
// over a 64 symbol alphabet carries 126 bits of entropy.
const InviteTokenLength = 21

const urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// GenerateToken returns size random bytes encoded as unpadded base64url.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// MustGenerateToken panics if the system RNG fails.
func MustGenerateToken(size int) string {
	token, err := GenerateToken(size)
	if err != nil {
		panic(fmt.Sprintf("cryptox: %v", err))
	}
	return token
}

// GenerateInviteToken returns a URL-safe token of InviteTokenLength chars
// drawn uniformly from [A-Za-z0-9_-].
func GenerateInviteToken() (string, error) {
	buf := make([]byte, InviteTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}

	// 256 is a multiple of 64 so masking keeps the distribution uniform.
	out := make([]byte, InviteTokenLength)
	for i, b := range buf {
		out[i] = urlAlphabet[b&63]
	}
	return string(out), nil
}

// IsURLSafe reports whether s only uses the token alphabet.
func IsURLSafe(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

// FingerprintToken returns the base64url SHA-256 of token (43 chars).
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// ShortFingerprint is the first 8 chars of FingerprintToken, enough to
// correlate log lines without leaking the token.
func ShortFingerprint(token string) string {
	return FingerprintToken(token)[:8]
}
