// Package api assembles the HTTP surface of the gateway
package api

import (
	"time"

	"hubgate/internal/hub"
	"hubgate/internal/platform/config"
	"hubgate/internal/platform/logger"
	phttp "hubgate/internal/platform/net/http"
	"hubgate/internal/platform/store"

	"hubgate/internal/modkit"
	"hubgate/internal/modkit/httpkit"
	"hubgate/internal/modkit/module"

	authhttp "hubgate/internal/services/authgate/http"
	authsvc "hubgate/internal/services/authgate/service"
	idxdom "hubgate/internal/services/indexer/domain"
	idxmod "hubgate/internal/services/indexer/module"
	idxsvc "hubgate/internal/services/indexer/service"
	metamod "hubgate/internal/services/meta/module"
	relaymod "hubgate/internal/services/relay/module"
	signersmod "hubgate/internal/services/signers/module"
	usersmod "hubgate/internal/services/users/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Hub    *hub.Client
	Logger *logger.Logger
}

// Runtime holds the background pieces the host must drive after Mount
type Runtime struct {
	// Worker is the index scheduler; run until shutdown
	Worker *idxsvc.Worker
	// Tasks is the queue producer, shared with the subscriber
	Tasks idxdom.Enqueuer
	// CloseQueue stops the queue accepting new tasks
	CloseQueue func()
}

// Mount mounts the API service onto the given router and returns the
// background runtime
func Mount(r phttp.Router, opt Options) Runtime {
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		Hub: opt.Hub,
	}

	signers := signersmod.New(deps)
	signerPorts := module.MustPortsOf[signersmod.Ports](signers)

	users := usersmod.New(deps)
	userPorts := module.MustPortsOf[usersmod.Ports](users)

	// the indexer consumes the users/signers ports; the users handlers in
	// turn enqueue onto the indexer's queue
	indexer := idxmod.New(deps, userPorts.Indexer, signerPorts.Writer)
	tasks := module.MustPortsOf[idxmod.Ports](indexer).Enqueuer
	users.Tasks = tasks

	relay := relaymod.New(deps)

	gate := authsvc.New(signerPorts.Reader, userPorts.Reader, authsvc.Config{
		MaxSkew: opt.Config.Prefix("AUTH_").MayDuration("MAX_SKEW", 5*time.Minute),
	})

	meta := metamod.New(deps)
	mods := []module.Module{signers, users, indexer, relay}

	r.Group(func(root httpkit.Router) {
		root.Use(httpkit.CommonStack()...)

		// meta probes and docs stay outside the auth gate
		meta.MountRoutes(root)
		phttp.MountSwagger(root, opt.Config.MayBool("API_DOCS", false))
		phttp.MountProfiler(root, "/debug", opt.Config.MayBool("PPROF", false))

		root.Group(func(gated httpkit.Router) {
			gated.Use(httpkit.Auth(authhttp.NewPort(gate)))
			for _, m := range mods {
				module.Register(m.Name(), m.Ports())
				m.MountRoutes(gated)
			}
		})
	})

	return Runtime{
		Worker:     indexer.Worker(),
		Tasks:      tasks,
		CloseQueue: indexer.Close,
	}
}
