package ports

import "context"

// TokenRepo resolves a hardware token identifier to the user it is
// issued to. Token provisioning is administered outside the engine.
type TokenRepo interface {
	ResolveUser(ctx context.Context, tokenID string) (string, error)
}
