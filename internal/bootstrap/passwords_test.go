package bootstrap

import (
	"context"
	"testing"

	"github.com/slooze/foodorder/internal/models"
	"github.com/slooze/foodorder/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPlaintextPasswords(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()

	alreadyHashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, store.CreateUser(ctx, &models.User{Username: "plain", Password: "letmein", Role: models.RoleMember}))
	require.NoError(t, store.CreateUser(ctx, &models.User{Username: "hashed", Password: string(alreadyHashed), Role: models.RoleAdmin}))

	require.NoError(t, HashPlaintextPasswords(ctx, store))

	plain, err := store.GetUserByUsername(ctx, "plain")
	require.NoError(t, err)
	assert.NotEqual(t, "letmein", plain.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(plain.Password), []byte("letmein")))

	hashed, err := store.GetUserByUsername(ctx, "hashed")
	require.NoError(t, err)
	assert.Equal(t, string(alreadyHashed), hashed.Password)
}
