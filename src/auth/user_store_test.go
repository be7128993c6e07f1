package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obraunsdorf/playbook-creator/src/pbcerrors"
)

// cheap parameters keep the tests fast
var testParams = HashParams{Time: 1, Memory: 64, Threads: 1, KeyLen: 16, SaltSize: 8}

func newTestStore(t *testing.T) *UserStore {
	t.Helper()
	store := NewUserStore(testParams)
	require.NoError(t, store.AddUser(*NewUserFactory().NewUserStruct("coach", "blitz")))
	return store
}

func TestVerifyCredentials(t *testing.T) {
	store := newTestStore(t)

	ok, user := store.VerifyCredentials("coach", "blitz")
	require.True(t, ok)
	assert.Equal(t, "coach", user.Username)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.PasswordHash.Hash)

	ok, user = store.VerifyCredentials("coach", "wrong")
	assert.False(t, ok)
	assert.Nil(t, user)

	ok, _ = store.VerifyCredentials("nobody", "blitz")
	assert.False(t, ok)
}

func TestAddUserTwiceFails(t *testing.T) {
	store := newTestStore(t)

	err := store.AddUser(NewUser{ID: "x", Username: "coach", Password: "other"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.ErrorIs(t, err, pbcerrors.ErrAlreadyExists)
}

func TestSaltsDiffer(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddUser(NewUser{ID: "2", Username: "assistant", Password: "blitz"}))

	assert.NotEqual(t, store.users["coach"].PasswordHash.Salt, store.users["assistant"].PasswordHash.Salt)
	assert.NotEqual(t, store.users["coach"].PasswordHash.Hash, store.users["assistant"].PasswordHash.Hash)
	assert.Equal(t, "argon2id", store.users["coach"].PasswordHash.Method)
}

func TestUpdateUser(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.UpdateUser(NewUser{Username: "coach", Password: "audible"}))

	ok, _ := store.VerifyCredentials("coach", "audible")
	assert.True(t, ok)
	ok, _ = store.VerifyCredentials("coach", "blitz")
	assert.False(t, ok)

	assert.ErrorIs(t, store.UpdateUser(NewUser{Username: "nobody"}), ErrUserNotFound)
}

func TestRemoveAndList(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddUser(NewUser{ID: "2", Username: "assistant", Password: "x"}))

	assert.Equal(t, []string{"assistant", "coach"}, store.ListUsers())

	require.NoError(t, store.RemoveUser("coach"))
	assert.ErrorIs(t, store.RemoveUser("coach"), ErrUserNotFound)
	_, err := store.GetUser("coach")
	assert.ErrorIs(t, err, pbcerrors.ErrNotFound)
	assert.Equal(t, []string{"assistant"}, store.ListUsers())
}
