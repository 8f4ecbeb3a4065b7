package repository

import (
	"errors"
	"os"
	"sync"
	"testing"

	"user-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	models.HashCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func newUser(t *testing.T, id *int, name, email string) *models.User {
	t.Helper()
	user, err := models.NewUser(id, name, email, "Pa$$2w0rd!")
	require.NoError(t, err)
	return user
}

func intPtr(v int) *int {
	return &v
}

func TestMemoryUserRepository_SaveAndGet(t *testing.T) {
	repo := NewMemoryUserRepository()
	repo.Save(newUser(t, nil, "John Doe", "john.doe@example.com"))

	saved, ok := repo.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, "John Doe", saved.Name())
	assert.Equal(t, "john.doe@example.com", saved.Email())

	id, ok := saved.ID()
	assert.True(t, ok)
	assert.Equal(t, 1, id)
}

func TestMemoryUserRepository_SequentialIDs(t *testing.T) {
	repo := NewMemoryUserRepository()
	names := []string{"one", "two", "three"}
	for _, name := range names {
		repo.Save(newUser(t, nil, name, name+"@example.com"))
	}

	for i, name := range names {
		user, ok := repo.GetByID(i + 1)
		require.True(t, ok)
		assert.Equal(t, name, user.Name())
	}
}

func TestMemoryUserRepository_SaveKeepsCallerTransient(t *testing.T) {
	repo := NewMemoryUserRepository()
	user := newUser(t, nil, "Alice", "alice@example.com")
	repo.Save(user)

	_, ok := user.ID()
	assert.False(t, ok)
}

func TestMemoryUserRepository_SaveKeepsHash(t *testing.T) {
	repo := NewMemoryUserRepository()
	user := newUser(t, nil, "Alice", "alice@example.com")
	repo.Save(user)

	saved, ok := repo.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, user.PasswordHash(), saved.PasswordHash())
	assert.True(t, saved.VerifyPassword("Pa$$2w0rd!"))
}

func TestMemoryUserRepository_SaveWithIDUpserts(t *testing.T) {
	repo := NewMemoryUserRepository()
	repo.Save(newUser(t, intPtr(42), "Zed", "zed@example.com"))

	user, ok := repo.GetByID(42)
	require.True(t, ok)
	assert.Equal(t, "Zed", user.Name())

	repo.Save(newUser(t, intPtr(42), "Zed Two", "zed2@example.com"))
	user, ok = repo.GetByID(42)
	require.True(t, ok)
	assert.Equal(t, "Zed Two", user.Name())
	assert.Len(t, repo.GetAll(), 1)
}

func TestMemoryUserRepository_GetByIDUnknown(t *testing.T) {
	repo := NewMemoryUserRepository()
	user, ok := repo.GetByID(99)
	assert.False(t, ok)
	assert.Nil(t, user)
}

func TestMemoryUserRepository_Update(t *testing.T) {
	repo := NewMemoryUserRepository()
	repo.Save(newUser(t, nil, "Jane Doe", "jane.doe@example.com"))

	saved, ok := repo.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", saved.Name())

	id, _ := saved.ID()
	err := repo.Update(newUser(t, &id, "Jane Smith", "jane.smith@example.com"))
	require.NoError(t, err)

	got, ok := repo.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, "Jane Smith", got.Name())
	assert.Equal(t, "jane.smith@example.com", got.Email())
}

func TestMemoryUserRepository_UpdateUnknownID(t *testing.T) {
	repo := NewMemoryUserRepository()
	err := repo.Update(newUser(t, intPtr(5), "Ghost", "ghost@example.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserNotFound)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, 5, notFound.ID)

	_, ok := repo.GetByID(5)
	assert.False(t, ok, "failed update must not insert")
}

func TestMemoryUserRepository_UpdateWithoutID(t *testing.T) {
	repo := NewMemoryUserRepository()
	err := repo.Update(newUser(t, nil, "Ghost", "ghost@example.com"))
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, repo.GetAll())
}

func TestMemoryUserRepository_Delete(t *testing.T) {
	repo := NewMemoryUserRepository()
	repo.Save(newUser(t, nil, "John Roe", "john.roe@example.com"))

	saved, ok := repo.GetByID(1)
	require.True(t, ok)

	repo.Delete(saved)
	_, ok = repo.GetByID(1)
	assert.False(t, ok)
}

func TestMemoryUserRepository_DeleteAbsentIsNoop(t *testing.T) {
	repo := NewMemoryUserRepository()
	repo.Save(newUser(t, nil, "John Roe", "john.roe@example.com"))

	repo.Delete(newUser(t, intPtr(9), "Nobody", "nobody@example.com"))
	repo.Delete(newUser(t, nil, "Transient", "transient@example.com"))
	assert.Len(t, repo.GetAll(), 1)
}

func TestMemoryUserRepository_GetByIDOrFail(t *testing.T) {
	repo := NewMemoryUserRepository()
	repo.Save(newUser(t, nil, "Alice", "alice@example.com"))

	user, err := repo.GetByIDOrFail(1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name())

	_, err = repo.GetByIDOrFail(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, "user with ID 2 does not exist", err.Error())
}

func TestMemoryUserRepository_GetAll(t *testing.T) {
	repo := NewMemoryUserRepository()
	repo.Save(newUser(t, nil, "User One", "user1@example.com"))
	repo.Save(newUser(t, nil, "User Two", "user2@example.com"))

	all := repo.GetAll()
	assert.Len(t, all, 2)
	assert.Contains(t, all, 1)
	assert.Contains(t, all, 2)
}

func TestMemoryUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryUserRepository()
	repo.Save(newUser(t, nil, "Alice", "alice@example.com"))

	user, ok := repo.GetByID(1)
	require.True(t, ok)
	user.SetName("Mallory")

	all := repo.GetAll()
	all[1].SetEmail("mallory@example.com")

	stored, ok := repo.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, "Alice", stored.Name())
	assert.Equal(t, "alice@example.com", stored.Email())
}

func TestMemoryUserRepository_ConcurrentSaves(t *testing.T) {
	repo := NewMemoryUserRepository()
	user := newUser(t, nil, "Worker", "worker@example.com")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Save(user)
		}()
	}
	wg.Wait()

	all := repo.GetAll()
	assert.Len(t, all, 50)
	for id := 1; id <= 50; id++ {
		assert.Contains(t, all, id)
	}
}
