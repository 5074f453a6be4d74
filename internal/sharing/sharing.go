// Package sharing implements the two sharing modes: granting read access to
// registered users by email and issuing a stable, unguessable link token.
package sharing

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/filedrop/filedrop_api/internal/access"
	"github.com/filedrop/filedrop_api/internal/errlocal"
	"github.com/filedrop/filedrop_api/internal/models"
	"github.com/filedrop/filedrop_api/internal/store"
	"github.com/filedrop/filedrop_api/internal/utils"
)

const shareTokenLength = 12

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// GrantToUsers resolves each email to an existing account and merges the
// matches into the file's share set. Unknown addresses and the owner's own
// address are silently skipped; re-granting an already-shared user is a
// no-op. Returns the users the grant applies to.
func (s *Service) GrantToUsers(ctx context.Context, file *models.File, requesterID uuid.UUID, emails []string) ([]models.User, error) {
	if !access.CanShare(file, requesterID) {
		return nil, errlocal.NewErrForbidden("only owner can share", "", nil)
	}

	lowered := make([]string, 0, len(emails))
	for _, email := range emails {
		email = strings.TrimSpace(strings.ToLower(email))
		if email != "" {
			lowered = append(lowered, email)
		}
	}
	if len(lowered) == 0 {
		return nil, errlocal.NewErrBadRequest("emails required", "", nil)
	}

	users, err := s.store.FindUsersByEmails(ctx, lowered)
	if err != nil {
		return nil, err
	}

	granted := make([]models.User, 0, len(users))
	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		if u.ID == file.OwnerID {
			continue
		}
		granted = append(granted, u)
		ids = append(ids, u.ID)
	}

	if err := s.store.AddFileShares(ctx, file.ID, ids); err != nil {
		return nil, err
	}

	return granted, nil
}

// IssueLink returns the file's share token, generating one only on first
// call. Repeated calls return the identical token, so previously handed out
// links never go stale.
func (s *Service) IssueLink(ctx context.Context, file *models.File, requesterID uuid.UUID) (string, error) {
	if !access.CanShare(file, requesterID) {
		return "", errlocal.NewErrForbidden("only owner can share", "", nil)
	}

	if file.ShareToken != nil {
		return *file.ShareToken, nil
	}

	candidate, err := utils.RandomToken(shareTokenLength)
	if err != nil {
		return "", err
	}

	// Set-if-absent in the store; a concurrent first-time caller may win, in
	// which case its token is returned here.
	token, err := s.store.SetShareTokenIfAbsent(ctx, file.ID, candidate)
	if err != nil {
		return "", err
	}
	file.ShareToken = &token

	return token, nil
}

// LinkPath derives the download path for a share token.
func LinkPath(token string) string {
	return "/share/" + token
}

// AccessibleFiles holds the two disjoint listings returned to a user.
type AccessibleFiles struct {
	Owned  []models.File
	Shared []models.File
}

// FetchAccessible lists files the user owns and files shared with them, each
// newest-first. The lists are disjoint by construction: owners never appear
// in their own share sets.
func (s *Service) FetchAccessible(ctx context.Context, userID uuid.UUID) (*AccessibleFiles, error) {
	owned, err := s.store.ListOwnedFiles(ctx, userID)
	if err != nil {
		return nil, err
	}

	shared, err := s.store.ListSharedFiles(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &AccessibleFiles{Owned: owned, Shared: shared}, nil
}
