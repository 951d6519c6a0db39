// Package logging provides structured logging for kwfinder.
//
// This package wraps a global zap logger with convenience functions for the
// events the wizard cares about: stage transitions and suggestion lookups.
//
// # Silent by Default
//
// The wizard draws on the terminal, so logging is disabled unless a level is
// requested through the --log-level flag, the config file, or the
// KWFINDER_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize(logging.Options{Level: "debug", File: "/tmp/kwfinder.log"}); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Domain Logging
//
//	logging.LogTransition("input", "fetching", 3)
//	logging.LogLookupStart(requestID, "mock", []string{"plumbing", "Chicago"})
//	logging.LogLookup(requestID, "mock", 8, elapsed, nil)
//
// Every lookup carries a request id so its start, completion and any stale
// discard can be correlated.
package logging
