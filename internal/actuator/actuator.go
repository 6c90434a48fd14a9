// Package actuator holds locker actuator implementations. The real
// hardware driver speaks its own protocol behind the
// ports.LockerActuator interface; Log stands in wherever no hardware
// is attached.
package actuator

import (
	"context"

	"github.com/wb-go/wbf/logger"
)

type Log struct {
	logger logger.Logger
}

func NewLog(logger logger.Logger) *Log {
	return &Log{logger: logger}
}

func (a *Log) Open(_ context.Context, lockerID string) error {
	a.logger.Info("locker opened",
		logger.String("locker_id", lockerID),
	)
	return nil
}
