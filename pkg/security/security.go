package security

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const TOKEN_KEY = "Authorization"

var ErrInvalidJWT = fmt.Errorf("invalid token")

// TokenClaims is the payload carried by an access token issued at login.
type TokenClaims struct {
	User       string `json:"u"`
	Role       string `json:"r"`
	ExpireTime int64  `json:"exp"`
	NotBefore  int64  `json:"nbf"`
}

func (t TokenClaims) Valid() error {
	now := time.Now().Unix()
	if t.ExpireTime < now || t.NotBefore > now {
		return fmt.Errorf("expired token, %w", ErrInvalidJWT)
	}
	return nil
}

func NewTokenClaims(user, role string, expireTime int64) TokenClaims {
	return TokenClaims{
		User:       user,
		Role:       role,
		ExpireTime: expireTime,
		NotBefore:  time.Now().Unix() - 1,
	}
}

// GenerateJWT signs claims with the configured shared secret (HS256).
func GenerateJWT(claims TokenClaims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"u":   claims.User,
		"r":   claims.Role,
		"exp": claims.ExpireTime,
		"nbf": claims.NotBefore,
	})
	return token.SignedString(secret)
}

func VerifyToken(tokenString string, secret []byte) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s, %w", t.Method.Alg(), ErrInvalidJWT)
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWT
	}

	claims := &TokenClaims{}
	if u, ok := mc["u"].(string); ok {
		claims.User = u
	}
	if r, ok := mc["r"].(string); ok {
		claims.Role = r
	}
	if exp, ok := mc["exp"].(float64); ok {
		claims.ExpireTime = int64(exp)
	}
	if nbf, ok := mc["nbf"].(float64); ok {
		claims.NotBefore = int64(nbf)
	}

	if err := claims.Valid(); err != nil {
		return nil, err
	}
	return claims, nil
}
