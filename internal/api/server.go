package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	_ "github.com/filedrop/filedrop_api/docs"
	"github.com/filedrop/filedrop_api/internal/auth"
	"github.com/filedrop/filedrop_api/internal/blobstore"
	"github.com/filedrop/filedrop_api/internal/config"
	"github.com/filedrop/filedrop_api/internal/errlocal"
	"github.com/filedrop/filedrop_api/internal/logging"
	"github.com/filedrop/filedrop_api/internal/sharing"
	"github.com/filedrop/filedrop_api/internal/store"
)

const (
	defaultTimeout = time.Second * 30
	apiPrefix      = "/api"
)

type Server struct {
	s            *http.Server
	router       *mux.Router
	store        store.Store
	blobs        blobstore.BlobStore
	authManager  auth.AuthManager
	sharing      *sharing.Service
	serverConfig config.ServerConfig
	authConfig   config.AuthConfig
	uploadConfig config.UploadConfig
	logger       *logging.Logger
}

// @title FileDrop API
// @version 1.0
// @description Multi-user file storage and sharing service.

// @host 0.0.0.0:5000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func NewServer(
	cfg config.Config,
	store store.Store,
	blobs blobstore.BlobStore,
	authManager auth.AuthManager,
	logger *logging.Logger,
) *Server {
	r := mux.NewRouter()

	return &Server{
		s: &http.Server{
			Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:      r,
			WriteTimeout: defaultTimeout,
			ReadTimeout:  defaultTimeout,
		},
		router:       r,
		store:        store,
		blobs:        blobs,
		authManager:  authManager,
		sharing:      sharing.NewService(store),
		serverConfig: cfg.Server,
		authConfig:   cfg.Auth,
		uploadConfig: cfg.Upload,
		logger:       logger.WithApiTag(),
	}
}

func (s *Server) InitRouter() *mux.Router {
	s.initRouter()
	return s.router
}

func (s *Server) Start() error {
	s.logger.Infof("starting server at %s", s.s.Addr)
	s.initRouter()

	return s.s.ListenAndServe()
}

func (s *Server) Shutdown() error {
	s.logger.Infof("shutting down server at %s", s.s.Addr)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := s.s.Shutdown(ctx); err != nil {
		s.logger.Warnf("graceful shutdown failed, forcing close: %v", err)
		return s.s.Close()
	}

	return nil
}

func (s *Server) WriteResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		s.logger.WithContext(r.Context()).WithField("status", status).Info("request processed")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		data = map[string]string{"status": http.StatusText(status)}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		s.logger.WithContext(r.Context()).WithError(err).Error("failed to encode response")
		return
	}

	s.logger.WithContext(r.Context()).WithField("status", status).Info("request processed")
}

func (s *Server) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	var errLocal errlocal.LocalError
	if !errors.As(err, &errLocal) {
		// Internal detail never leaks to clients.
		errLocal = errlocal.NewErrInternal("internal server error", err.Error(), nil)
	}
	w.WriteHeader(errLocal.Code())

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if encodeErr := encoder.Encode(map[string]string{"message": errLocal.Message()}); encodeErr != nil {
		http.Error(w, `{"message":"failed to encode error response"}`, http.StatusInternalServerError)
		return
	}

	s.logger.WithContext(r.Context()).WithError(err).Error("request processed with error")
}

// HealthCheck godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]bool "Service is up"
// @Router /health [get]
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	s.WriteResponse(w, r, http.StatusOK, map[string]bool{"ok": true})
}
