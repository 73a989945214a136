package util

import (
	"errors"
	"olympus_backend/internal/model"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const identityKey = "identity"

// Claims is the signed session payload: the identity projection plus
// a token id used for revocation on logout.
type Claims struct {
	model.Identity
	jwt.RegisteredClaims
}

func GenerateSessionToken(identity model.Identity, secret string, expiration time.Duration) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func ParseSessionToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid session token")
}

func SetClaims(c *gin.Context, claims *Claims) {
	c.Set(identityKey, claims)
}

func GetClaimsFromContext(c *gin.Context) *Claims {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// GetIdentityFromContext returns the request identity, or nil for anonymous requests.
func GetIdentityFromContext(c *gin.Context) *model.Identity {
	claims := GetClaimsFromContext(c)
	if claims == nil {
		return nil
	}
	return &claims.Identity
}
