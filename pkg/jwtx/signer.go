package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HMAC secret accepted.
const MinSecretLength = 32

var ErrWeakSecret = errors.New("jwtx: secret must be at least 32 bytes")

// Signer signs claims into a compact JWT.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// HS256 signs and verifies tokens with a shared HMAC secret. The service
// is both issuer and audience of its own session tokens so no key
// distribution is needed.
type HS256 struct {
	secret []byte
	opts   VerifyOptions
}

var (
	_ Signer   = (*HS256)(nil)
	_ Verifier = (*HS256)(nil)
)

func NewHS256(secret []byte, opts VerifyOptions) (*HS256, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	return &HS256{secret: secret, opts: opts}, nil
}

func (s *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

func (s *HS256) Sign(claims Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify parses raw, checks the signature and algorithm, then applies the
// issuer and expiry rules from VerifyOptions.
func (s *HS256) Verify(raw string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{s.Alg()}),
		// Time based checks happen below so the leeway is applied once.
		jwt.WithoutClaimsValidation(),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Claims{}, ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return Claims{}, ErrAlgMismatch
	default:
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	now := time.Now().UTC()
	if s.opts.Now != nil {
		now = s.opts.Now()
	}

	if err := claims.ValidateIssuer(s.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiryAt(now, s.opts.Leeway); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateClaims(); err != nil {
		return Claims{}, err
	}
	return claims, nil
}
