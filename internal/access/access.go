// Package access holds the authorization predicates for files. A share token
// only identifies a file; the requester must still pass CanRead, so link
// sharing is discovery, not authorization.
package access

import (
	"github.com/google/uuid"

	"github.com/filedrop/filedrop_api/internal/models"
)

// CanRead reports whether the user may download the file: the owner always
// may, everyone else only when present in the share set.
func CanRead(file *models.File, userID uuid.UUID) bool {
	if file.OwnerID == userID {
		return true
	}
	for _, id := range file.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}

// CanShare reports whether the user may grant access or issue a share link.
// Sharing is owner-only.
func CanShare(file *models.File, userID uuid.UUID) bool {
	return file.OwnerID == userID
}
