// Package cli provides the interactive investrack command-line client.
//
// It wires configuration, the local store, and the three core components
// (user directory, session manager, investment ledger) into a REPL. Which
// commands are reachable depends entirely on the session: while nobody is
// logged in only register/login are accepted, and once a session exists the
// investment commands open up, the CLI equivalent of redirecting between
// the login and dashboard pages.
//
// Key commands:
//   - register / login / logout
//   - list: render all investments with their estimated profit
//   - add / edit / delete: mutate the ledger
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
