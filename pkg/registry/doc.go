// Package registry caches imported specification documents and resolves
// import URIs to validation diagnostics.
//
// The Importer satisfies the validator's importer contract: given an
// import URI it fetches the document over HTTP, validates it, and returns
// the diagnostics prefixed with the URI. Results are cached in a Backend,
// either in memory for one-shot runs or SQLite for the server, and a
// cron-driven Refresher keeps the cache current in long-running
// deployments.
package registry
