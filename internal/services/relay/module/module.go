// Package module wires the relay service into the API
package module

import (
	"hubgate/internal/modkit"
	"hubgate/internal/modkit/httpkit"
	rhttp "hubgate/internal/services/relay/http"
	"hubgate/internal/services/relay/service"
)

// Ports exposed by the relay module
type Ports struct {
	Relay service.Service
}

// Module implements the relay service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the relay module
func New(deps modkit.Deps) *Module {
	svc := service.New(deps.Hub)
	m := &Module{deps: deps}
	m.ports = Ports{Relay: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "relay" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes mounts the message submission endpoints
func (m *Module) MountRoutes(r httpkit.Router) {
	rhttp.Register(r, m.ports.Relay)
}
