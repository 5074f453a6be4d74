package dto

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/filedrop/filedrop_api/internal/models"
)

const (
	uploadFieldName = "files"

	// maxFormMemory caps the in-memory portion of multipart parsing; larger
	// parts spill to temp files.
	maxFormMemory = 32 << 20
)

type UploadedFileResponse struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"originalName"`
	Mimetype     string    `json:"mimetype"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

func NewUploadedFileResponse(file models.File) UploadedFileResponse {
	return UploadedFileResponse{
		ID:           file.ID.String(),
		OriginalName: file.OriginalName,
		Mimetype:     file.Mimetype,
		Size:         file.Size,
		UploadedAt:   file.UploadedAt,
	}
}

type ListFilesResponse struct {
	MyFiles      []models.File `json:"myFiles"`
	SharedWithMe []models.File `json:"sharedWithMe"`
}

type ShareUsersRequest struct {
	Emails []string `json:"emails" validate:"required,min=1,dive,required"`
}

type SharedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type ShareUsersResponse struct {
	SharedWith []SharedUser `json:"sharedWith"`
}

func NewShareUsersResponse(users []models.User) ShareUsersResponse {
	shared := make([]SharedUser, 0, len(users))
	for _, u := range users {
		shared = append(shared, SharedUser{ID: u.ID.String(), Email: u.Email})
	}
	return ShareUsersResponse{SharedWith: shared}
}

type ShareLinkResponse struct {
	Token   string `json:"token"`
	URLPath string `json:"urlPath"`
	URL     string `json:"url,omitempty"`
}

// GetUploadsFromMultipartForm parses the request form and returns the file
// headers of the `files` field. Headers describe the parts without reading
// their content, so the batch can be validated before any blob is written.
func GetUploadsFromMultipartForm(r *http.Request) ([]*multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return nil, err
	}

	return r.MultipartForm.File[uploadFieldName], nil
}

// UploadsFromHeaders converts multipart headers into the metadata the
// validation layer works with.
func UploadsFromHeaders(headers []*multipart.FileHeader) []models.Upload {
	uploads := make([]models.Upload, 0, len(headers))
	for _, h := range headers {
		uploads = append(uploads, models.Upload{
			OriginalName: h.Filename,
			Mimetype:     h.Header.Get("Content-Type"),
			Size:         h.Size,
		})
	}
	return uploads
}
