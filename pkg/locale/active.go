package locale

import (
	"sync/atomic"

	"github.com/dmitrymomot/liquidfilters/pkg/money"
)

var active atomic.Pointer[money.Conventions]

// Active returns the process-wide conventions snapshot, or Default if none was set.
func Active() money.Conventions {
	if c := active.Load(); c != nil {
		return *c
	}
	return Default()
}

// SetActive replaces the process-wide snapshot. Invalid conventions are rejected
// and the previous snapshot is kept.
func SetActive(c money.Conventions) error {
	if err := c.Validate(); err != nil {
		return err
	}
	active.Store(&c)
	return nil
}

// InitFromEnv (re)initializes the snapshot from the environment.
// On failure the snapshot is reset to Default and the error is returned, so callers
// can log it and keep going.
func InitFromEnv() error {
	c, err := FromEnv()
	if err != nil {
		Reset()
		return err
	}
	return SetActive(c)
}

// Reset drops the snapshot so Active returns Default again.
func Reset() {
	active.Store(nil)
}
