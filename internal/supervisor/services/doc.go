// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

/*
Package services provides suture.Service wrappers for Propmatch components.

HTTPServerService adapts an *http.Server's blocking ListenAndServe to
suture's Serve(ctx) and drains connections with Shutdown when the context is
cancelled.

CatalogService owns the catalog lifecycle:
  - loads the catalog on every start; a failed first load is returned so
    suture retries with backoff
  - watches the catalog file's directory with fsnotify (file sources only)
    and reloads after events settle
  - reloads on ReloadInterval when set
  - spaces reloads at least MinReloadGap apart with a golang.org/x/time/rate
    limiter, coalescing requests inside the gap into one deferred reload and
    counting them in propmatch_catalog_reloads_total{result="throttled"}
*/
package services
