// Package cli implements the interactive Workfolio agent console.
//
// The agent is a small REPL: an employee logs in, clocks in and out, takes
// breaks and reviews their session history; an administrator can additionally
// list sessions across all users. While a session is open the orchestrator
// captures the desktop on a fixed interval and uploads the screenshots in the
// background.
package cli
