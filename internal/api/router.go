package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/filedrop/filedrop_api/docs"
)

const (
	fileIDTag     = "file_id"
	shareTokenTag = "share_token"
)

func (s *Server) initRouter() {
	s.router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	root := s.router.PathPrefix(apiPrefix).Subrouter().StrictSlash(true)
	root.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "endpoint not found", http.StatusNotFound)
	})
	root.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			s.setCORSHeaders(w, r)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	})
	root.Use(mux.CORSMethodMiddleware(root), s.commonMiddleware)
	root.HandleFunc("/health", s.healthCheck).Methods(http.MethodGet)

	authRouter := root.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/register", s.register).Methods(http.MethodPost)
	authRouter.HandleFunc("/login", s.login).Methods(http.MethodPost)
	authRouter.HandleFunc("/logout", s.logout).Methods(http.MethodPost)

	meRouter := root.PathPrefix("/auth").Subrouter()
	meRouter.Use(s.authMiddleware)
	meRouter.HandleFunc("/me", s.me).Methods(http.MethodGet)

	fileRouter := root.PathPrefix("/files").Subrouter()
	fileRouter.Use(s.authMiddleware)
	fileRouter.HandleFunc("/upload", s.upload).Methods(http.MethodPost)
	fileRouter.HandleFunc("", s.listFiles).Methods(http.MethodGet)
	fileRouter.HandleFunc(fmt.Sprintf("/{%s}/download", fileIDTag), s.download).Methods(http.MethodGet)
	fileRouter.HandleFunc(fmt.Sprintf("/{%s}/share/users", fileIDTag), s.shareWithUsers).Methods(http.MethodPost)
	fileRouter.HandleFunc(fmt.Sprintf("/{%s}/share/link", fileIDTag), s.createShareLink).Methods(http.MethodPost)

	shareRouter := root.PathPrefix("/share").Subrouter()
	shareRouter.Use(s.authMiddleware)
	shareRouter.HandleFunc(fmt.Sprintf("/{%s}/download", shareTokenTag), s.downloadByToken).Methods(http.MethodGet)
}
