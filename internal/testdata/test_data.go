package testdata

import (
	"time"

	"github.com/google/uuid"

	"github.com/filedrop/filedrop_api/internal/models"
)

var (
	OwnerID = uuid.MustParse("04ae379a-31a6-4b32-a6d7-f6cdd844f81a")
	Owner   = models.User{
		ID:             OwnerID,
		Email:          "owner@example.com",
		Name:           "Owner",
		HashedPassword: "hashed_password_1",
	}

	RecipientID = uuid.MustParse("13ae379a-31a6-4b32-a6d7-f6cdd844f82b")
	Recipient   = models.User{
		ID:             RecipientID,
		Email:          "recipient@example.com",
		Name:           "Recipient",
		HashedPassword: "hashed_password_2",
	}

	StrangerID = uuid.MustParse("24ae379a-31a6-4b32-a6d7-f6cdd844f83c")
	Stranger   = models.User{
		ID:             StrangerID,
		Email:          "stranger@example.com",
		HashedPassword: "hashed_password_3",
	}

	UploadedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	PrivateFileID = uuid.MustParse("44ae379a-31a6-4b32-a6d7-f6cdd844f85e")
	PrivateFile   = models.File{
		ID:           PrivateFileID,
		OwnerID:      OwnerID,
		OriginalName: "report.pdf",
		StoredName:   "1748779200000-a1b2c3d4-report.pdf",
		Mimetype:     "application/pdf",
		Size:         2048,
		UploadedAt:   UploadedAt,
		SharedWith:   []uuid.UUID{},
	}

	SharedFileToken = "tok_abcdef12"
	SharedFileID    = uuid.MustParse("54ae379a-31a6-4b32-a6d7-f6cdd844f86f")
	SharedFile      = models.File{
		ID:           SharedFileID,
		OwnerID:      OwnerID,
		OriginalName: "notes.txt",
		StoredName:   "1748779200001-e5f6a7b8-notes.txt",
		Mimetype:     "text/plain",
		Size:         64,
		UploadedAt:   UploadedAt,
		SharedWith:   []uuid.UUID{RecipientID},
		ShareToken:   &SharedFileToken,
	}
)
