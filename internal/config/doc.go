// Package config implements the configuration resolver: it merges
// caller-supplied project options with an optionally fetched remote
// configuration document and derives the session snapshot (hostnames,
// views, mount points, language).
//
// Option records can be assembled from multiple sources before
// resolution. The priority order used by the sidekick binary (later
// sources override earlier non-zero fields) is:
//  1. Environment variables (FromEnv)
//  2. Command-line flags (ParseFlags)
//  3. JSON options file (FromFile)
//
// The resolver itself never consults ambient state; callers combine the
// sources with Merge and pass the result to [Resolve].
package config
