package auth

import (
	"github.com/filedrop/filedrop_api/internal/config"
	"github.com/filedrop/filedrop_api/internal/models"
)

// AuthManager issues and verifies session tokens. It holds no state beyond
// the signing secret, so issued tokens cannot be revoked server-side.
type AuthManager interface {
	Issue(user models.User) (string, error)
	Parse(tokenStr string) (*Claims, error)
}

type jwtManager struct {
	generator *jwtGenerator
}

func NewJWTManager(cfg config.Config) AuthManager {
	return &jwtManager{
		generator: newJWTGenerator(cfg),
	}
}

func (m *jwtManager) Issue(user models.User) (string, error) {
	return m.generator.newToken(user)
}

func (m *jwtManager) Parse(tokenStr string) (*Claims, error) {
	return m.generator.parse(tokenStr)
}
