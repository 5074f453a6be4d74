package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/filedrop/filedrop_api/internal/api/dto"
	"github.com/filedrop/filedrop_api/internal/errlocal"
	"github.com/filedrop/filedrop_api/internal/models"
	"github.com/filedrop/filedrop_api/internal/utils"
)

const authHeaderPrefix = "Bearer "

// authMiddleware resolves the session token to a user identity before any
// business logic runs. The cookie takes precedence over the bearer header.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := getTokenCookie(r)
		if err != nil || token == "" {
			token = strings.TrimPrefix(r.Header.Get("Authorization"), authHeaderPrefix)
		}
		if token == "" {
			s.WriteError(w, r, errlocal.NewErrUnauthorized("unauthorized", "", nil))
			return
		}

		claims, err := s.authManager.Parse(token)
		if err != nil {
			s.WriteError(w, r, errlocal.NewErrUnauthorized("invalid token", err.Error(), nil))
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			s.WriteError(w, r, errlocal.NewErrUnauthorized("invalid token", err.Error(), nil))
			return
		}

		user := models.User{
			ID:    userID,
			Email: claims.Email,
		}
		ctx := utils.SetUser(r.Context(), user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Register godoc
// @Summary User registration
// @Description Create an account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.AuthResponse "User registered"
// @Failure 400 {object} errlocal.ErrBadRequest "Invalid request body"
// @Failure 409 {object} errlocal.ErrConflict "Email already registered"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Router /auth/register [post]
func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	b, err := dto.GetRequestBody[dto.RegisterRequest](r)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrBadRequest("email and password required", err.Error(), nil))
		return
	}

	hashed, err := utils.HashPass(b.Password)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrInternal("registration failed", err.Error(), nil))
		return
	}

	user := models.User{
		Email:          b.Email,
		Name:           b.Name,
		HashedPassword: hashed,
	}

	if err := s.store.CreateUser(ctx, &user); err != nil {
		s.WriteError(w, r, err)
		return
	}

	token, err := s.authManager.Issue(user)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrInternal("failed to create token", err.Error(), nil))
		return
	}

	s.setTokenCookie(w, token, s.authTTL())
	s.WriteResponse(w, r, http.StatusCreated, dto.NewAuthResponse(user, token))
}

// Login godoc
// @Summary User login
// @Description Authenticate and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Session started"
// @Failure 400 {object} errlocal.ErrBadRequest "Invalid request body"
// @Failure 401 {object} errlocal.ErrUnauthorized "Invalid credentials"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Router /auth/login [post]
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	b, err := dto.GetRequestBody[dto.LoginRequest](r)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrBadRequest("invalid request body", err.Error(), nil))
		return
	}

	user, err := s.store.GetUserByEmail(ctx, b.Email)
	if err != nil {
		var notFoundErr *errlocal.ErrNotFound
		if errors.As(err, &notFoundErr) {
			s.WriteError(w, r, errlocal.NewErrUnauthorized("invalid credentials", "", nil))
			return
		}
		s.WriteError(w, r, err)
		return
	}

	if err := utils.CompareHashPass(user.HashedPassword, b.Password); err != nil {
		s.WriteError(w, r, errlocal.NewErrUnauthorized("invalid credentials", "", nil))
		return
	}

	token, err := s.authManager.Issue(*user)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrInternal("failed to create token", err.Error(),
			map[string]any{"user_id": user.ID.String()}))
		return
	}

	s.setTokenCookie(w, token, s.authTTL())
	s.WriteResponse(w, r, http.StatusOK, dto.NewAuthResponse(*user, token))
}

// Logout godoc
// @Summary User logout
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Logged out"
// @Router /auth/logout [post]
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.clearTokenCookie(w)
	s.WriteResponse(w, r, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me godoc
// @Summary Current user
// @Description Return the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse "User profile"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 404 {object} errlocal.ErrNotFound "User no longer exists"
// @Security BearerAuth
// @Router /auth/me [get]
func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := utils.GetUser(ctx).(models.User)

	user, err := s.store.GetUser(ctx, identity.ID)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.NewMeResponse(*user))
}
