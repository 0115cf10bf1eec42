// Package module wires the users service into the API
package module

import (
	"hubgate/internal/modkit"
	"hubgate/internal/modkit/httpkit"
	idxdom "hubgate/internal/services/indexer/domain"
	"hubgate/internal/services/users/domain"
	uhttp "hubgate/internal/services/users/http"
	"hubgate/internal/services/users/service"
)

// Ports exposed by the users module
type Ports struct {
	Reader  domain.ReaderPort
	Indexer domain.IndexerPort
}

// Module implements the users service module
type Module struct {
	deps  modkit.Deps
	ports Ports

	// Tasks is the warm-up enqueuer, injected after the indexer module is
	// built (the indexer itself consumes this module's Indexer port).
	// Nil disables warm-ups.
	Tasks idxdom.Enqueuer
}

// New constructs the users module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)
	svc := service.New(deps.PG, deps.Hub, service.Config{StrictReads: opts.StrictReads})

	m := &Module{deps: deps}
	m.ports = Ports{Reader: svc, Indexer: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "users" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes mounts the profile endpoints
func (m *Module) MountRoutes(r httpkit.Router) {
	uhttp.Register(r, m.ports.Reader, m.Tasks)
}
