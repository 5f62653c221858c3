package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chinmayjoshi03/CivicConnect/models"
)

func TestCanViewAndEdit(t *testing.T) {
	owner := &models.User{ID: primitive.NewObjectID(), Role: models.RoleCitizen}
	stranger := &models.User{ID: primitive.NewObjectID(), Role: models.RoleCitizen}
	admin := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	report := &models.Report{ID: primitive.NewObjectID(), User: owner.ID}

	t.Run("owner citizen may view and edit", func(t *testing.T) {
		assert.True(t, CanView(owner, report))
		assert.True(t, CanEdit(owner, report))
		assert.True(t, IsOwner(owner, report))
	})

	t.Run("non-owner citizen is denied", func(t *testing.T) {
		assert.False(t, CanView(stranger, report))
		assert.False(t, CanEdit(stranger, report))
		assert.False(t, IsOwner(stranger, report))
	})

	t.Run("admin may view and edit any report", func(t *testing.T) {
		assert.True(t, CanView(admin, report))
		assert.True(t, CanEdit(admin, report))
		assert.False(t, IsOwner(admin, report))
	})
}

func TestScope(t *testing.T) {
	citizen := &models.User{ID: primitive.NewObjectID(), Role: models.RoleCitizen}
	admin := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	target := primitive.NewObjectID()

	t.Run("citizen is pinned to own reports", func(t *testing.T) {
		owner, err := Scope(citizen, "")
		require.NoError(t, err)
		require.NotNil(t, owner)
		assert.Equal(t, citizen.ID, *owner)
	})

	t.Run("citizen-supplied owner filter is ignored", func(t *testing.T) {
		owner, err := Scope(citizen, target.Hex())
		require.NoError(t, err)
		require.NotNil(t, owner)
		assert.Equal(t, citizen.ID, *owner)
	})

	t.Run("admin without filter is unrestricted", func(t *testing.T) {
		owner, err := Scope(admin, "")
		require.NoError(t, err)
		assert.Nil(t, owner)
	})

	t.Run("admin may narrow to a target user", func(t *testing.T) {
		owner, err := Scope(admin, target.Hex())
		require.NoError(t, err)
		require.NotNil(t, owner)
		assert.Equal(t, target, *owner)
	})

	t.Run("admin-supplied malformed id is rejected", func(t *testing.T) {
		_, err := Scope(admin, "not-a-hex-id")
		assert.Error(t, err)
	})
}
