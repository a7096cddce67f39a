package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken means the client presented no credential at all.
	ErrMissingToken = errors.New("authentication error: token not provided")
	// ErrInvalidToken covers bad signatures, malformed tokens, and expiry.
	ErrInvalidToken = errors.New("authentication error: invalid token")
)

// Identity is what a verified token asserts about the client.
// Subject seeds the connection's userId; Email is kept for a future
// per-board authorization check and is otherwise unused.
type Identity struct {
	Subject string
	Email   string
}

// JWT wraps a signing secret for issuing/verifying HS256 tokens
type JWT struct{ secret []byte }

// New creates a new JWT signer/verifier.
func New(secret string) *JWT { return &JWT{secret: []byte(secret)} }

// Verify checks a token and returns the identity claims it carries.
// An empty token fails with ErrMissingToken; any parse or signature
// failure maps to ErrInvalidToken with the cause attached.
func (j *JWT) Verify(tok string) (Identity, error) {
	if tok == "" {
		return Identity{}, ErrMissingToken
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tok, claims, func(token *jwt.Token) (interface{}, error) {
		return j.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, fmt.Errorf("%w: no sub claim", ErrInvalidToken)
	}
	email, _ := claims["email"].(string)
	return Identity{Subject: sub, Email: email}, nil
}

// Sign creates a token for sub with the given TTL
func (j *JWT) Sign(sub, email string, ttl time.Duration) (string, error) {
	if sub == "" {
		return "", errors.New("empty sub")
	}
	claims := jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(j.secret)
}
