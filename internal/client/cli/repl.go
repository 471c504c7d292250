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
	Google(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	Problems(ctx context.Context, page string) error
	Problem(ctx context.Context, id string) error
	Today(ctx context.Context) error
	Submit(ctx context.Context) error
	Submissions(ctx context.Context, problemID string) error
	Stats(ctx context.Context) error
	Profile(ctx context.Context) error
	Passwd(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the LeetTrack CLI.
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
//	  - help               — show available commands
//	  - register           — create an account
//	  - login              — authenticate
//	  - problems [page]    — browse the catalog
//	  - problem <id>       — show a problem
//	  - today              — show today's challenge
//	  - exit | quit        — leave the program
//
//	Logged in, additionally:
//	  - submit             — record a submission (interactive)
//	  - submissions [id]   — submission history, optionally for one problem
//	  - stats              — statistics and streak
//	  - profile            — show and edit the profile
//	  - passwd             — change the password
//	  - logout             — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lt> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: problems, problem <id>, today, submit, submissions [id], stats, profile, passwd, logout, exit")
			} else {
				printlnFn("Available commands: register, login, google <token>, problems, problem <id>, today, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "google":
			if len(args) == 0 {
				printlnFn("Usage: google <access-token>")
				continue
			}
			_ = a.Google(ctx, args[0])

		case "logout":
			_ = a.Logout(ctx)

		case "problems":
			page := ""
			if len(args) > 0 {
				page = args[0]
			}
			_ = a.Problems(ctx, page)

		case "problem":
			if len(args) == 0 {
				printlnFn("Usage: problem <id>")
				continue
			}
			_ = a.Problem(ctx, args[0])

		case "today":
			_ = a.Today(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "submissions":
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			_ = a.Submissions(ctx, id)

		case "stats":
			_ = a.Stats(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "passwd":
			_ = a.Passwd(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
