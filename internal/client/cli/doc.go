// Package cli provides the interactive BookNest command-line client.
//
// It wires configuration, the local session store, the REST API client and
// the per-view services into an interactive REPL. Typical flow: restore the
// persisted session, show the prompt, and execute user commands.
//
// Key features:
//   - Login / Logout with a session that survives restarts
//   - Browse and search the catalog, borrow and return books
//   - Manage a personal reading list with notes
//   - Admin back-office for users, books and loans
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Authorize, and runREPL for details.
package cli
