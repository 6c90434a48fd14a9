package ports

import "context"

// LockerActuator opens the physical locker. Its wire protocol is
// opaque to the engine.
type LockerActuator interface {
	Open(ctx context.Context, lockerID string) error
}
