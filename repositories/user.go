package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"transit-ops/auth"
	"transit-ops/domain"
	"transit-ops/errors"
)

const (
	userPrefix      = "user:"
	userEmailPrefix = "user_email:"
)

// UserRepository stores account records in BadgerDB with a secondary
// email index. Passwords are hashed with Argon2id before they ever
// reach a transaction.
type UserRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUserRepository(db *badger.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

// CreateUser persists a new account and returns its id. The email index
// makes duplicate registrations fail fast.
func (r *UserRepository) CreateUser(user domain.User, password string) (string, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}
	user.PasswordHash = hash

	bytes, err := marshalUser(user)
	if err != nil {
		return "", err
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		emailKey := []byte(userEmailPrefix + user.Email)
		if _, err := txn.Get(emailKey); err == nil {
			return errors.ErrUserAlreadyExists
		} else if err != badger.ErrKeyNotFound {
			return err
		}
		if err := txn.Set([]byte(userPrefix+user.ID), bytes); err != nil {
			return err
		}
		return txn.Set(emailKey, []byte(user.ID))
	})
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

// GetUserByID resolves an account record. It honors the caller's
// context so an abandoned handshake lookup stops here.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}

	var user domain.User
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return unmarshalUser(value, &user)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.User{}, errors.ErrUserNotFound
	}
	return user, err
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}

	var id string
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userEmailPrefix + email))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			id = string(value)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return r.GetUserByID(ctx, id)
}

// storedUser keeps the password hash on disk while domain.User hides it
// from JSON rendering.
type storedUser struct {
	ID           string      `json:"id"`
	DisplayName  string      `json:"displayName"`
	Email        string      `json:"email"`
	Role         domain.Role `json:"role"`
	PasswordHash string      `json:"passwordHash"`
}

func marshalUser(user domain.User) ([]byte, error) {
	return json.Marshal(storedUser{
		ID:           user.ID,
		DisplayName:  user.DisplayName,
		Email:        user.Email,
		Role:         user.Role,
		PasswordHash: user.PasswordHash,
	})
}

func unmarshalUser(value []byte, user *domain.User) error {
	var stored storedUser
	if err := json.Unmarshal(value, &stored); err != nil {
		return err
	}
	*user = domain.User{
		ID:           stored.ID,
		DisplayName:  stored.DisplayName,
		Email:        stored.Email,
		Role:         stored.Role,
		PasswordHash: stored.PasswordHash,
	}
	return nil
}
