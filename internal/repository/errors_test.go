package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStorageErrorWrapsDriverError(t *testing.T) {
	err := storageErr("find user", gorm.ErrRecordNotFound)
	require.Error(t, err)

	// The gorm sentinel must stay reachable through the wrapper.
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var storage *StorageError
	require.ErrorAs(t, err, &storage)
	assert.Equal(t, "find user", storage.Op)
	assert.Contains(t, err.Error(), "find user")
}

func TestStorageErrNilPassthrough(t *testing.T) {
	assert.NoError(t, storageErr("anything", nil))
}

func TestStorageErrorMessage(t *testing.T) {
	err := storageErr("upsert review", errors.New("connection refused"))
	assert.Equal(t, "storage: upsert review: connection refused", err.Error())
}
