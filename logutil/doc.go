// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides structured logging built on top of slog.
//
// The package keeps one process-wide logger. Commands configure it once at
// startup; libraries log through component-scoped loggers created with NewLogger.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Package-level helpers
//	logutil.Info("lookup finished", "command", "node", "matches", 2)
//
//	// Component-scoped logging
//	log := logutil.NewLogger("which").WithOperation("Lookup")
//	log.Debug("probed", "candidate", "/usr/bin/node", "executable", true)
//
// # Debug Mode
//
// Debug logging is enabled when SetupLogger is called with debug=true or when the
// AZD_DEBUG environment variable is "true" at setup time.
//
// # Structured Logging
//
// When structured=true, logs are written as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"lookup finished","command":"node"}
//
// Otherwise the slog text format is used:
//
//	time=2024-01-15T10:30:00Z level=INFO msg="lookup finished" command=node
package logutil
