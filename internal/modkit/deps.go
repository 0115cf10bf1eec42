// Package modkit provides module wiring and core deps
package modkit

import (
	"hubgate/internal/hub"
	"hubgate/internal/modkit/repokit"
	"hubgate/internal/platform/config"
	"hubgate/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	Hub *hub.Client
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional stores
func (d Deps) ZeroOK() bool { return true }
