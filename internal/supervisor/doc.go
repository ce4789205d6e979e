// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor provides process supervision for Reelmatch using suture v4.

The tree has two layers so a failing background job never takes the API down:

	RootSupervisor ("reelmatch")
	├── DataSupervisor ("data-layer")
	│   └── CacheGCService (badger cache backend only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Cancelling the context
passed to Serve or ServeBackground shuts every layer down, waiting up to
ShutdownTimeout per service.

Supervisor events are logged through sutureslog, which takes an *slog.Logger.
Pass logging.NewSlogLogger() to route them into zerolog:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
