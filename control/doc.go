// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, metrics and debug introspection for the async logging runtime.
//
// Provides:
//   - LoadConfig reading the Log* environment variables
//   - ConfigStore snapshots with reload listeners
//   - MetricsRegistry and DebugProbes fed from the worker pool
//
// Platform probes are build-tag-partitioned.
package control
