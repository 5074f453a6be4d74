package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	authmocks "github.com/filedrop/filedrop_api/internal/auth/mocks"
	blobmocks "github.com/filedrop/filedrop_api/internal/blobstore/mocks"
	"github.com/filedrop/filedrop_api/internal/config"
	"github.com/filedrop/filedrop_api/internal/logging"
	"github.com/filedrop/filedrop_api/internal/sharing"
	storemocks "github.com/filedrop/filedrop_api/internal/store/mocks"
)

func newTestServer(t *testing.T) (*Server, *storemocks.Store, *authmocks.AuthManager, *blobmocks.BlobStore) {
	t.Helper()

	store := storemocks.NewStore(t)
	authManager := authmocks.NewAuthManager(t)
	blobs := blobmocks.NewBlobStore(t)
	cfg := config.Config{
		Auth:   config.AuthConfig{TokenTTL: time.Hour},
		Upload: config.UploadConfig{MaxFileSizeMB: 20, MaxFiles: 10},
		Log:    config.LogConfig{Level: "error", Format: "text"},
	}
	logger := logging.NewLogger(cfg)

	srv := &Server{
		s:            &http.Server{},
		router:       mux.NewRouter(),
		store:        store,
		blobs:        blobs,
		authManager:  authManager,
		sharing:      sharing.NewService(store),
		serverConfig: cfg.Server,
		authConfig:   cfg.Auth,
		uploadConfig: cfg.Upload,
		logger:       logger,
	}

	return srv, store, authManager, blobs
}

// uploadPart is one file in a multipart upload built for tests.
type uploadPart struct {
	filename    string
	contentType string
	data        []byte
}

type multipartFormData struct {
	body        io.Reader
	contentType string
}

func createMultipartUpload(t *testing.T, parts ...uploadPart) multipartFormData {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, p := range parts {
		part, err := writer.CreatePart(map[string][]string{
			"Content-Disposition": {`form-data; name="files"; filename="` + p.filename + `"`},
			"Content-Type":        {p.contentType},
		})
		require.NoError(t, err)

		_, err = part.Write(p.data)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return multipartFormData{
		body:        body,
		contentType: writer.FormDataContentType(),
	}
}
