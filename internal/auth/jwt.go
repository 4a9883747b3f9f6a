package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobboard/internal/models"
)

// Identity is the authenticated caller, passed explicitly into every
// service operation. No ambient session state exists.
type Identity struct {
	UserID   uint
	Username string
	Role     models.Role
}

// Claims extends the registered JWT claims with the identity fields and a
// token type discriminator ("access" or "refresh").
type Claims struct {
	jwt.RegisteredClaims
	UserID   uint   `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Type     string `json:"typ"`
}

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// TokenPair is what login and refresh hand back to the client.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// JWTManager issues and validates HS256 token pairs.
type JWTManager struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewJWTManager(secret string, accessExpiry, refreshExpiry time.Duration) *JWTManager {
	return &JWTManager{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// IssuePair creates an access/refresh token pair for the given identity.
func (m *JWTManager) IssuePair(id Identity) (TokenPair, error) {
	access, err := m.sign(id, tokenTypeAccess, m.accessExpiry)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := m.sign(id, tokenTypeRefresh, m.refreshExpiry)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func (m *JWTManager) sign(id Identity, typ string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "jobboard",
		},
		UserID:   id.UserID,
		Username: id.Username,
		Role:     string(id.Role),
		Type:     typ,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateAccess parses an access token and returns the caller identity.
func (m *JWTManager) ValidateAccess(tokenString string) (Identity, error) {
	return m.validate(tokenString, tokenTypeAccess)
}

// ValidateRefresh parses a refresh token and returns the caller identity.
func (m *JWTManager) ValidateRefresh(tokenString string) (Identity, error) {
	return m.validate(tokenString, tokenTypeRefresh)
}

func (m *JWTManager) validate(tokenString, wantType string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, errors.New("invalid token claims")
	}
	if claims.Type != wantType {
		return Identity{}, fmt.Errorf("token is not a %s token", wantType)
	}

	return Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     models.Role(claims.Role),
	}, nil
}
