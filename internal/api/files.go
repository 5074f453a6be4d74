package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/filedrop/filedrop_api/internal/access"
	"github.com/filedrop/filedrop_api/internal/api/dto"
	"github.com/filedrop/filedrop_api/internal/blobstore"
	"github.com/filedrop/filedrop_api/internal/errlocal"
	"github.com/filedrop/filedrop_api/internal/models"
	"github.com/filedrop/filedrop_api/internal/sharing"
	"github.com/filedrop/filedrop_api/internal/utils"
)

// Upload godoc
// @Summary Upload files
// @Description Store up to 10 files in one multipart request
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files to upload"
// @Success 201 {array} dto.UploadedFileResponse "Stored files"
// @Failure 400 {object} errlocal.ErrBadRequest "Invalid type or size"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Security BearerAuth
// @Router /files/upload [post]
func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := utils.GetUser(ctx).(models.User)

	headers, err := dto.GetUploadsFromMultipartForm(r)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrBadRequest("invalid multipart form", err.Error(), nil))
		return
	}

	// The whole batch is validated before a single byte reaches storage:
	// one bad file rejects everything.
	if err := blobstore.ValidateBatch(dto.UploadsFromHeaders(headers), s.uploadConfig); err != nil {
		s.WriteError(w, r, err)
		return
	}

	// All-or-nothing: drop blobs already written in this batch.
	saved := make([]*models.File, 0, len(headers))
	cleanup := func() {
		for _, f := range saved {
			if rmErr := s.blobs.Remove(ctx, f.StoredName); rmErr != nil {
				s.logger.WithContext(ctx).WithError(rmErr).Warn("failed to clean up blob")
			}
		}
	}

	for _, h := range headers {
		file, err := s.saveBlob(r, h, user.ID)
		if err != nil {
			cleanup()
			s.WriteError(w, r, errlocal.NewErrInternal("failed to save files", err.Error(), nil))
			return
		}
		saved = append(saved, file)
	}

	// Records commit in one transaction; a failed batch leaves no metadata
	// behind to dangle over the removed blobs.
	if err := s.store.CreateFiles(ctx, saved); err != nil {
		cleanup()
		s.WriteError(w, r, errlocal.NewErrInternal("failed to save files", err.Error(), nil))
		return
	}

	resp := make([]dto.UploadedFileResponse, 0, len(saved))
	for _, f := range saved {
		resp = append(resp, dto.NewUploadedFileResponse(*f))
	}

	s.WriteResponse(w, r, http.StatusCreated, resp)
}

func (s *Server) saveBlob(r *http.Request, h *multipart.FileHeader, ownerID uuid.UUID) (*models.File, error) {
	ctx := r.Context()

	storedName, err := blobstore.NewStoredName(h.Filename)
	if err != nil {
		return nil, err
	}

	part, err := h.Open()
	if err != nil {
		return nil, err
	}
	defer part.Close()

	if err := s.blobs.Save(ctx, part, storedName, h.Size); err != nil {
		return nil, err
	}

	return &models.File{
		OwnerID:      ownerID,
		OriginalName: h.Filename,
		StoredName:   storedName,
		Mimetype:     h.Header.Get("Content-Type"),
		Size:         h.Size,
	}, nil
}

// ListFiles godoc
// @Summary List accessible files
// @Description Files the user owns and files shared with them, newest first
// @Tags files
// @Produce json
// @Success 200 {object} dto.ListFilesResponse "Accessible files"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Security BearerAuth
// @Router /files [get]
func (s *Server) listFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := utils.GetUser(ctx).(models.User)

	accessible, err := s.sharing.FetchAccessible(ctx, user.ID)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.ListFilesResponse{
		MyFiles:      accessible.Owned,
		SharedWithMe: accessible.Shared,
	})
}

// Download godoc
// @Summary Download a file
// @Description Stream the blob with an attachment disposition
// @Tags files
// @Produce octet-stream
// @Param file_id path string true "File ID"
// @Success 200 {file} file "File content"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 403 {object} errlocal.ErrForbidden "No read access"
// @Failure 404 {object} errlocal.ErrNotFound "File not found"
// @Failure 410 {object} errlocal.ErrGone "Blob missing on disk"
// @Security BearerAuth
// @Router /files/{file_id}/download [get]
func (s *Server) download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := utils.GetUser(ctx).(models.User)

	fileID, err := uuid.Parse(mux.Vars(r)[fileIDTag])
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrBadRequest("invalid file ID", err.Error(), nil))
		return
	}

	file, err := s.store.GetFile(ctx, fileID)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.streamFile(w, r, file, user.ID)
}

// streamFile authorizes the requester and streams the blob. Shared by the
// by-ID and by-token download paths: token resolution never bypasses the
// read check.
func (s *Server) streamFile(w http.ResponseWriter, r *http.Request, file *models.File, requesterID uuid.UUID) {
	ctx := r.Context()

	if !access.CanRead(file, requesterID) {
		s.WriteError(w, r, errlocal.NewErrForbidden("forbidden", "", nil))
		return
	}

	blob, err := s.blobs.Open(ctx, file.StoredName)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	defer blob.Close()

	w.Header().Set("Content-Type", file.Mimetype)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(file.OriginalName)))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", file.Size))

	if _, err := io.Copy(w, blob); err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("failed to stream blob")
		return
	}

	s.logger.WithContext(ctx).WithField("file_id", file.ID.String()).Info("file downloaded")
}

// ShareWithUsers godoc
// @Summary Share a file with users
// @Description Grant read access to registered users by email (owner only)
// @Tags files
// @Accept json
// @Produce json
// @Param file_id path string true "File ID"
// @Param request body dto.ShareUsersRequest true "Email list"
// @Success 200 {object} dto.ShareUsersResponse "Matched users"
// @Failure 400 {object} errlocal.ErrBadRequest "Emails required"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 403 {object} errlocal.ErrForbidden "Only owner can share"
// @Failure 404 {object} errlocal.ErrNotFound "File not found"
// @Security BearerAuth
// @Router /files/{file_id}/share/users [post]
func (s *Server) shareWithUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := utils.GetUser(ctx).(models.User)

	fileID, err := uuid.Parse(mux.Vars(r)[fileIDTag])
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrBadRequest("invalid file ID", err.Error(), nil))
		return
	}

	b, err := dto.GetRequestBody[dto.ShareUsersRequest](r)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrBadRequest("emails required", err.Error(), nil))
		return
	}

	file, err := s.store.GetFile(ctx, fileID)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	matched, err := s.sharing.GrantToUsers(ctx, file, user.ID, b.Emails)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.NewShareUsersResponse(matched))
}

// CreateShareLink godoc
// @Summary Issue a share link
// @Description Return the file's stable share token, generating it on first call (owner only)
// @Tags files
// @Produce json
// @Param file_id path string true "File ID"
// @Success 200 {object} dto.ShareLinkResponse "Share link"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 403 {object} errlocal.ErrForbidden "Only owner can share"
// @Failure 404 {object} errlocal.ErrNotFound "File not found"
// @Security BearerAuth
// @Router /files/{file_id}/share/link [post]
func (s *Server) createShareLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := utils.GetUser(ctx).(models.User)

	fileID, err := uuid.Parse(mux.Vars(r)[fileIDTag])
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrBadRequest("invalid file ID", err.Error(), nil))
		return
	}

	file, err := s.store.GetFile(ctx, fileID)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	token, err := s.sharing.IssueLink(ctx, file, user.ID)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	resp := dto.ShareLinkResponse{
		Token:   token,
		URLPath: sharing.LinkPath(token),
	}
	if base := s.serverConfig.BaseURL; base != "" {
		resp.URL = base + apiPrefix + resp.URLPath
	}

	s.WriteResponse(w, r, http.StatusOK, resp)
}
