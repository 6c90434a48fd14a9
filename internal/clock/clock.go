// Package clock abstracts the time source so that window checks and
// the expiry sweep can be driven by a fake in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type Real struct{}

func (Real) Now() time.Time { return time.Now().UTC() }
