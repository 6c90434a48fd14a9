package repository

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/ezores/smart-locker-project-sub001/internal/domain"
)

// TokenRepository resolves hardware token identifiers against the
// access_tokens table. Tokens are provisioned out of band; revocation
// clears the active flag.
type TokenRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTokenRepo(db *dbpg.DB) *TokenRepository {
	return &TokenRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TokenRepository) ResolveUser(ctx context.Context, tokenID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `SELECT user_id FROM access_tokens WHERE id = $1 AND active`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, tokenID)
	if err != nil {
		return "", storageErr("resolve token", err)
	}

	var userID string
	if err = row.Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrTokenNotFound
		}
		return "", storageErr("scan token", err)
	}

	return userID, nil
}

// MemoryTokens backs the token lookup for the in-memory storage
// engine.
type MemoryTokens struct {
	mu    sync.RWMutex
	users map[string]string // token id -> user id
}

func NewMemoryTokens(users map[string]string) *MemoryTokens {
	copied := make(map[string]string, len(users))
	for k, v := range users {
		copied[k] = v
	}
	return &MemoryTokens{users: copied}
}

func (m *MemoryTokens) ResolveUser(_ context.Context, tokenID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	userID, ok := m.users[tokenID]
	if !ok {
		return "", domain.ErrTokenNotFound
	}
	return userID, nil
}

func (m *MemoryTokens) Register(tokenID, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[tokenID] = userID
}
