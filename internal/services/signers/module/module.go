// Package module wires the signers service and exposes its ports
package module

import (
	"hubgate/internal/modkit"
	"hubgate/internal/modkit/httpkit"
	"hubgate/internal/services/signers/domain"
	"hubgate/internal/services/signers/service"
)

// Ports exposed by the signers module
type Ports struct {
	Reader domain.ReaderPort
	Writer domain.WriterPort
	Sync   domain.SyncPort
}

// Module implements the signers service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the signers module
func New(deps modkit.Deps) *Module {
	svc := service.New(deps.PG, deps.Hub)
	m := &Module{deps: deps}
	m.ports = Ports{Reader: svc, Writer: svc, Sync: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "signers" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes mounts no routes; signer state is written by the worker and
// the sync command only
func (m *Module) MountRoutes(_ httpkit.Router) {}
