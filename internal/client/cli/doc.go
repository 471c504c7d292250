// Package cli provides the interactive LeetTrack command-line client.
//
// It wires configuration, local storage, the REST API client, and an
// interactive REPL. Typical flow: rehydrate the persisted session, fetch a
// CSRF token, and execute user commands.
//
// Key features:
//   - Register / Login / Logout (including Google sign-in by token)
//   - Browse the problem catalog and today's challenge
//   - Record submissions from local source files
//   - View submission history, statistics and streaks
//   - Edit the profile and change the password
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
