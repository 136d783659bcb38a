package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ListInvestments(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the investrack CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The loop exits on scanner EOF
// or when the user types "exit" or "quit".
//
// The command set is gated on the session, checked before each dispatch:
//
//	Logged out: help, register, login, exit
//	Logged in:  help, list, add, edit, delete, logout, exit
//
// A protected command while logged out (or register/login while logged in)
// is refused with a hint instead of being executed; nothing of the command
// runs without the right session state.
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures to the user. This keeps the loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("invest> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, add, edit, delete, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			if a.isLoggedIn() {
				printlnFn("Already logged in.")
				continue
			}
			_ = a.Register(ctx)

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in.")
				continue
			}
			_ = a.Login(ctx)

		case "l", "list":
			if !a.isLoggedIn() {
				printlnFn("Access denied. Log in first.")
				continue
			}
			_ = a.ListInvestments(ctx)

		case "add":
			if !a.isLoggedIn() {
				printlnFn("Access denied. Log in first.")
				continue
			}
			_ = a.Add(ctx)

		case "edit":
			if !a.isLoggedIn() {
				printlnFn("Access denied. Log in first.")
				continue
			}
			_ = a.Edit(ctx)

		case "delete":
			if !a.isLoggedIn() {
				printlnFn("Access denied. Log in first.")
				continue
			}
			_ = a.Delete(ctx)

		case "logout":
			if !a.isLoggedIn() {
				continue
			}
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
