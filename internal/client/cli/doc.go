// Package cli provides the interactive CampusHub command-line client.
//
// It wires configuration, the local collections store, the feed engine, the
// backend API adapter, and an interactive REPL that works offline-first.
// Typical flow: open the local database, resume any stored session, start a
// background sync watcher, and execute user commands.
//
// Key features:
//   - Browse and refresh the community feed
//   - Post, like, comment, share
//   - Browse events (with category filter) and RSVP
//   - View and edit the profile; activity stats
//   - Login / Register / Logout (online with offline fallback)
//   - Sync events and profile with the backend
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
