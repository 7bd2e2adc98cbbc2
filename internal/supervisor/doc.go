// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

/*
Package supervisor runs StreamPick's long-lived services under suture v4.

# Tree

	RootSupervisor ("streampick")
	├── CatalogSupervisor ("catalog-layer")
	│   ├── CatalogRefreshService (if CONTENTSTACK_ENABLED)
	│   └── UptimeService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures on its own. A refresher stuck in a restart loop
backs off inside the catalog layer while the API layer keeps answering
from the last cached catalog snapshot.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddCatalogService(services.NewCatalogRefreshService(cache, cfg.Contentstack.RefreshInterval))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

Supervisor events (service start, failure, backoff, restart) are logged
through sutureslog, which writes into the zerolog pipeline via the slog
adapter in internal/logging.

# Shutdown

Canceling the context passed to Serve stops every service. Services that
do not return within ShutdownTimeout are listed by UnstoppedServiceReport.
*/
package supervisor
