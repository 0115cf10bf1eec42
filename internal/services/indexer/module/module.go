// Package module wires the index queue and worker and exposes the Enqueuer port
package module

import (
	"hubgate/internal/modkit"
	"hubgate/internal/modkit/httpkit"
	"hubgate/internal/services/indexer/domain"
	"hubgate/internal/services/indexer/queue"
	"hubgate/internal/services/indexer/service"
	signdom "hubgate/internal/services/signers/domain"
	usersdom "hubgate/internal/services/users/domain"
)

// Ports exposed by the indexer module
type Ports struct {
	// Enqueuer is the producer side of the task queue, consumed by the
	// subscriber and the HTTP handlers
	Enqueuer domain.Enqueuer
}

// Module owns the task queue and its worker
type Module struct {
	deps   modkit.Deps
	ports  Ports
	queue  *queue.Queue
	worker *service.Worker
}

// New constructs the indexer module over the users and signers ports
func New(deps modkit.Deps, users usersdom.IndexerPort, signers signdom.WriterPort) *Module {
	opts := FromConfig(deps.Cfg)

	q := queue.New()
	w := service.New(q, users, signers, service.Config{
		RatePerSecond: opts.RatePerSec,
		Burst:         opts.Burst,
	})

	m := &Module{deps: deps, queue: q, worker: w}
	m.ports = Ports{Enqueuer: q}
	return m
}

// Worker returns the scheduling worker; the host runs it
func (m *Module) Worker() *service.Worker { return m.worker }

// Close stops the queue from accepting new tasks
func (m *Module) Close() { m.queue.Close() }

// Name satisfies modkit.Module
func (m *Module) Name() string { return "indexer" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes mounts no routes; the worker is queue driven
func (m *Module) MountRoutes(_ httpkit.Router) {}
