package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/filedrop/filedrop_api/internal/models"
)

func TestCanRead(t *testing.T) {
	owner := uuid.New()
	shared := uuid.New()
	stranger := uuid.New()

	file := &models.File{OwnerID: owner, SharedWith: []uuid.UUID{shared}}

	assert.True(t, CanRead(file, owner))
	assert.True(t, CanRead(file, shared))
	assert.False(t, CanRead(file, stranger))
}

func TestCanReadOwnerWithoutShares(t *testing.T) {
	owner := uuid.New()
	file := &models.File{OwnerID: owner}

	// Owner is implicitly authorized regardless of the share set.
	assert.True(t, CanRead(file, owner))
	assert.False(t, CanRead(file, uuid.New()))
}

func TestCanShare(t *testing.T) {
	owner := uuid.New()
	shared := uuid.New()

	file := &models.File{OwnerID: owner, SharedWith: []uuid.UUID{shared}}

	assert.True(t, CanShare(file, owner))
	// Shared access never grants the right to re-share.
	assert.False(t, CanShare(file, shared))
	assert.False(t, CanShare(file, uuid.New()))
}
