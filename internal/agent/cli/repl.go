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
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Ping(ctx context.Context) error
	ClockIn(ctx context.Context) error
	StartBreak(ctx context.Context) error
	EndBreak(ctx context.Context) error
	ClockOut(ctx context.Context) error
	History(ctx context.Context) error
	Screenshots(ctx context.Context) error
	AdminSessions(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Workfolio agent.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - ping           — check server reachability
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - clockin        — open a work session
//	  - break          — start a break
//	  - endbreak       — end the current break
//	  - clockout       — close the session and show totals
//	  - history        — list recent sessions
//	  - screenshots    — list screenshots of a session (interactive ID prompt)
//	  - sessions       — list sessions across all users (admin only)
//	  - ping           — check server reachability
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("wf> %s > ", statusFn()))
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
				if a.isAdmin() {
					printlnFn("Available commands: clockin, break, endbreak, clockout, history, screenshots, sessions, ping, exit")
				} else {
					printlnFn("Available commands: clockin, break, endbreak, clockout, history, screenshots, ping, exit")
				}
			} else {
				printlnFn("Available commands: register, login, ping, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "clockin":
			_ = a.ClockIn(ctx)

		case "break":
			_ = a.StartBreak(ctx)

		case "endbreak":
			_ = a.EndBreak(ctx)

		case "clockout":
			_ = a.ClockOut(ctx)

		case "history":
			_ = a.History(ctx)

		case "screenshots":
			_ = a.Screenshots(ctx)

		case "sessions":
			if !a.isAdmin() {
				printlnFn("Admin role required")
				continue
			}
			_ = a.AdminSessions(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
