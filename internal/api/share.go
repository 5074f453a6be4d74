package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/filedrop/filedrop_api/internal/models"
	"github.com/filedrop/filedrop_api/internal/utils"
)

// DownloadByToken godoc
// @Summary Download via share link
// @Description Resolve a share token to its file and stream it. The token
// @Description identifies the file; the requester must still be the owner or
// @Description have been granted access.
// @Tags share
// @Produce octet-stream
// @Param share_token path string true "Share token"
// @Success 200 {file} file "File content"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 403 {object} errlocal.ErrForbidden "No read access"
// @Failure 404 {object} errlocal.ErrNotFound "Invalid link"
// @Failure 410 {object} errlocal.ErrGone "Blob missing on disk"
// @Security BearerAuth
// @Router /share/{share_token}/download [get]
func (s *Server) downloadByToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := utils.GetUser(ctx).(models.User)

	file, err := s.store.GetFileByShareToken(ctx, mux.Vars(r)[shareTokenTag])
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.streamFile(w, r, file, user.ID)
}
