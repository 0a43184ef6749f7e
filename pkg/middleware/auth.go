package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ahudio-admin-server/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UsernameKey is the gin context key holding the authenticated subject
const UsernameKey = "username"

var errInvalidToken = errors.New("invalid token")

// TokenIssuer signs and verifies HS256 access tokens
type TokenIssuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokenIssuer creates a TokenIssuer from the JWT settings
func NewTokenIssuer(cfg *config.Config) (*TokenIssuer, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.JWT.SigningKey == "" {
		return nil, errors.New("JWT signing key is required")
	}
	if cfg.JWT.TokenTTL <= 0 {
		return nil, errors.New("JWT token TTL must be positive")
	}
	return &TokenIssuer{
		key: []byte(cfg.JWT.SigningKey),
		ttl: cfg.JWT.TokenTTL,
		now: time.Now,
	}, nil
}

// Issue returns a signed token with sub set to the username
func (i *TokenIssuer) Issue(username string) (string, error) {
	if username == "" {
		return "", errors.New("username is required")
	}

	now := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// Verify checks signature and expiry and returns the subject
func (i *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return i.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errInvalidToken
	}
	return claims.Subject, nil
}

// AuthMiddleware rejects requests without a valid bearer token. Every rejection
// carries the same body.
func AuthMiddleware(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
			unauthorized(c)
			return
		}

		username, err := issuer.Verify(tokenString)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
}
