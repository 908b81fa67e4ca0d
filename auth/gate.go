package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"transit-ops/contract"
	"transit-ops/domain"
	"transit-ops/errors"
)

// Gate verifies a connection's identity token and confirms a live user
// record still exists before the registry may admit the connection.
// Any failure rejects the handshake with zero registry mutation.
type Gate struct {
	log           *slog.Logger
	users         contract.IUserStore
	secret        []byte
	lookupTimeout time.Duration
}

func NewGate(log *slog.Logger, users contract.IUserStore, secret []byte,
	lookupTimeout time.Duration) *Gate {
	return &Gate{log: log, users: users, secret: secret, lookupTimeout: lookupTimeout}
}

type lookupResult struct {
	user domain.User
	err  error
}

// Authenticate checks signature and expiry of the presented token, then
// resolves the claimed user against the store. The lookup runs in its
// own goroutine: if ctx is canceled first (the connection closed during
// the handshake) the result is abandoned and the caller never admits.
// The lookup is additionally bounded by the configured timeout.
func (g *Gate) Authenticate(ctx context.Context, tokenString string) (domain.User, error) {
	if tokenString == "" {
		return domain.User{}, errors.ErrUnauthenticated
	}

	claims, err := ValidateToken(tokenString, g.secret)
	if err != nil {
		g.log.Debug("Token rejected at handshake", "err", err)
		return domain.User{}, fmt.Errorf("%w: %v", errors.ErrUnauthenticated, err)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, g.lookupTimeout)
	defer cancel()

	results := make(chan lookupResult, 1)
	go func() {
		user, err := g.users.GetUserByID(lookupCtx, claims.UserID)
		results <- lookupResult{user: user, err: err}
	}()

	select {
	case <-lookupCtx.Done():
		g.log.Debug("Identity lookup abandoned", "user_id", claims.UserID, "err", lookupCtx.Err())
		return domain.User{}, fmt.Errorf("%w: %v", errors.ErrUnauthenticated, lookupCtx.Err())
	case res := <-results:
		if res.err != nil {
			return domain.User{}, fmt.Errorf("%w: %v", errors.ErrUnauthenticated, res.err)
		}
		return res.user, nil
	}
}
