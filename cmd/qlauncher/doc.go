// Package main hosts the QuantumLauncher CLI entrypoint and command graph.
//
// The Cobra-based command tree wires the startup core together: the default
// run command performs the legacy-directory migration check, resolves the
// data directory, and drives the startup orchestrator's event loop, while
// the remaining commands expose entry listings, configuration scaffolding,
// and an explicit migration trigger.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
