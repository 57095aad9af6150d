// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

/*
Package supervisor runs Propmatch's long-lived services under suture v4.

# Tree

	RootSupervisor ("propmatch")
	├── CatalogSupervisor ("catalog-layer")
	│   └── CatalogService (initial load, file watch, periodic reload)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The layers restart independently. If the catalog service keeps failing the
API keeps serving the last published snapshot, and readiness reports 503
until a first snapshot exists.

# Logging

Supervisor events (restarts, backoff, stop timeouts) go through sutureslog
into an slog.Logger. Production wires that logger to zerolog with
logging.NewSlogLogger:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddCatalogService(services.NewCatalogService(store, catalogCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)

See the services subpackage for the service wrappers.
*/
package supervisor
