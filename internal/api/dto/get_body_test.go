package dto

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequestBody(t *testing.T) {
	t.Run("valid register body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/auth/register",
			strings.NewReader(`{"name":"Alice","email":"a@x.com","password":"longenough"}`))

		body, err := GetRequestBody[RegisterRequest](r)
		require.NoError(t, err)
		assert.Equal(t, "Alice", body.Name)
		assert.Equal(t, "a@x.com", body.Email)
	})

	t.Run("name is optional", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/auth/register",
			strings.NewReader(`{"email":"a@x.com","password":"longenough"}`))

		_, err := GetRequestBody[RegisterRequest](r)
		assert.NoError(t, err)
	})

	t.Run("missing email rejected", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/auth/register",
			strings.NewReader(`{"password":"longenough"}`))

		_, err := GetRequestBody[RegisterRequest](r)
		assert.Error(t, err)
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":`))

		_, err := GetRequestBody[LoginRequest](r)
		assert.Error(t, err)
	})

	t.Run("empty email list rejected", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/files/x/share/users", strings.NewReader(`{"emails":[]}`))

		_, err := GetRequestBody[ShareUsersRequest](r)
		assert.Error(t, err)
	})
}
