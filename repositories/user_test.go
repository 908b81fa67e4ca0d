package repositories

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"transit-ops/auth"
	"transit-ops/domain"
	"transit-ops/errors"
)

func newUserRepository(t *testing.T) *UserRepository {
	t.Helper()
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepository(db, testLogger())
}

func TestUserRepository_Create_And_Lookup(t *testing.T) {
	req := require.New(t)
	repo := newUserRepository(t)

	// When creating an account without an id
	id, err := repo.CreateUser(domain.User{
		DisplayName: "Dana",
		Email:       "dana@example.com",
		Role:        domain.RoleFleetOperator,
	}, "S3cret-passphrase!")
	req.NoError(err)
	req.NotEmpty(id)

	// Then both lookups resolve the same record
	byID, err := repo.GetUserByID(context.Background(), id)
	req.NoError(err)
	req.Equal("Dana", byID.DisplayName)
	req.Equal(domain.RoleFleetOperator, byID.Role)

	byEmail, err := repo.GetUserByEmail(context.Background(), "dana@example.com")
	req.NoError(err)
	req.Equal(byID, byEmail)

	// And the stored hash verifies the original password
	match, err := auth.ComparePassword("S3cret-passphrase!", byID.PasswordHash)
	req.NoError(err)
	req.True(match)
}

func TestUserRepository_Duplicate_Email_Is_Rejected(t *testing.T) {
	req := require.New(t)
	repo := newUserRepository(t)
	user := domain.User{DisplayName: "Dana", Email: "dana@example.com", Role: domain.RoleEndUser}

	_, err := repo.CreateUser(user, "first")
	req.NoError(err)

	// When registering the same email again
	_, err = repo.CreateUser(user, "second")

	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}

func TestUserRepository_Unknown_User(t *testing.T) {
	req := require.New(t)
	repo := newUserRepository(t)

	_, err := repo.GetUserByID(context.Background(), "ghost")
	req.ErrorIs(err, errors.ErrUserNotFound)

	_, err = repo.GetUserByEmail(context.Background(), "ghost@example.com")
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func TestUserRepository_Lookup_Honors_Canceled_Context(t *testing.T) {
	req := require.New(t)
	repo := newUserRepository(t)
	id, err := repo.CreateUser(domain.User{Email: "dana@example.com"}, "pw")
	req.NoError(err)

	// When looking up with an already dead context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.GetUserByID(ctx, id)

	req.ErrorIs(err, context.Canceled)
}
