package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/filedrop/filedrop_api/internal/config"
	"github.com/filedrop/filedrop_api/internal/models"
)

type jwtGenerator struct {
	signingMethod jwt.SigningMethod
	secret        []byte
	ttl           time.Duration
}

func newJWTGenerator(cfg config.Config) *jwtGenerator {
	return &jwtGenerator{
		signingMethod: jwt.SigningMethodHS256,
		secret:        []byte(cfg.Auth.Secret),
		ttl:           cfg.Auth.TokenTTL,
	}
}

// Claims binds a session token to a user identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id" validate:"required,uuid"`
	Email  string `json:"email"`
}

func (g *jwtGenerator) newToken(user models.User) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(g.signingMethod, Claims{
		UserID: user.ID.String(),
		Email:  user.Email,

		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	})

	return token.SignedString(g.secret)
}

func (g *jwtGenerator) parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != g.signingMethod.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}

		return g.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if claims.UserID == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
