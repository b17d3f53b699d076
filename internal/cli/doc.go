// Package cli provides the interactive Back2Me terminal client.
//
// It wires configuration, the durable and ephemeral stores, the Back2Me
// services and a read-eval-print loop. On start the client restores a
// remembered session, seeds the demo feed and waits for commands.
//
// Key features:
//   - register / login (with "remember me") / logout / passwd / forgot
//   - feed, search, post and show listings
//   - messages, open and send in conversations
//   - avatar to upload or inspect the profile picture
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See runREPL for the command table.
package cli
