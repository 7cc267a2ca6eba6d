package auth

import (
	"errors"
	"fmt"
	"lottery-engine/internal/model"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const issuer = "lottery-engine"

// Issuer signs and verifies HS256 session tokens whose subject is the account id
type Issuer struct {
	secret      []byte
	sessionTTL  time.Duration
	rememberTTL time.Duration
	now         func() time.Time
}

func NewIssuer(secret string, sessionTTL, rememberTTL time.Duration) *Issuer {
	return &Issuer{
		secret:      []byte(secret),
		sessionTTL:  sessionTTL,
		rememberTTL: rememberTTL,
		now:         time.Now,
	}
}

// Issue returns a signed token for accountID. remember extends the lifetime.
func (i *Issuer) Issue(accountID string, remember bool) (string, time.Time, error) {
	ttl := i.sessionTTL
	if remember {
		ttl = i.rememberTTL
	}
	now := i.now()
	expiresAt := now.Add(ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Parse validates a token and returns its account id. Every failure wraps
// model.ErrNotAuthenticated.
func (i *Issuer) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: session expired", model.ErrNotAuthenticated)
		}
		return "", fmt.Errorf("%w: %v", model.ErrNotAuthenticated, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%w: invalid token", model.ErrNotAuthenticated)
	}
	return claims.Subject, nil
}
