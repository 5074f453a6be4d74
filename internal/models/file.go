package models

import (
	"time"

	"github.com/google/uuid"
)

// File is one uploaded blob plus its metadata. StoredName is the only name
// ever used for storage access; OriginalName is display-only.
type File struct {
	ID           uuid.UUID   `json:"id"`
	OwnerID      uuid.UUID   `json:"owner"`
	OriginalName string      `json:"originalName"`
	StoredName   string      `json:"-"`
	Mimetype     string      `json:"mimetype"`
	Size         int64       `json:"size"`
	UploadedAt   time.Time   `json:"uploadedAt"`
	SharedWith   []uuid.UUID `json:"sharedWith,omitempty"`
	ShareToken   *string     `json:"-"`
}

// Upload carries one incoming blob through validation and storage.
type Upload struct {
	OriginalName string
	Mimetype     string
	Size         int64
}
