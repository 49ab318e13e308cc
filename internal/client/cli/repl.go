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
	Feed(ctx context.Context) error
	NewPost(ctx context.Context) error
	Like(ctx context.Context, postID string) error
	Comment(ctx context.Context, postID string) error
	Share(ctx context.Context, postID string) error
	Events(ctx context.Context, category string) error
	RSVP(ctx context.Context, eventID string) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ShowStats(ctx context.Context) error
	Refresh(ctx context.Context) error
	Sync(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the CampusHub CLI.
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
//	Always available:
//	  - help               — show available commands
//	  - feed               — show the community feed
//	  - post               — compose a new post
//	  - like <id>          — toggle a like on a post
//	  - comment <id>       — comment on a post
//	  - share <id>         — print a shareable copy of a post
//	  - events [category]  — list upcoming events, optionally filtered
//	  - rsvp <id>          — toggle attendance on an event
//	  - profile            — show the profile
//	  - edit               — edit the profile
//	  - stats              — show activity stats
//	  - refresh            — re-read all collections from local storage
//	  - sync               — pull events and profile from the backend
//	  - exit | quit        — leave the program
//
//	Not logged in:
//	  - register           — create an account
//	  - login              — authenticate
//
//	Logged in:
//	  - logout             — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hub %s > ", statusFn()))
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
			printlnFn("Available commands: feed, post, like <id>, comment <id>, share <id>, events [category], rsvp <id>, profile, edit, stats, refresh, sync, exit")
			if a.isLoggedIn() {
				printlnFn("Account: logout")
			} else {
				printlnFn("Account: register, login")
			}

		case "feed", "f":
			_ = a.Feed(ctx)

		case "post":
			_ = a.NewPost(ctx)

		case "like":
			if len(args) == 0 {
				printlnFn("Usage: like <post id>")
				continue
			}
			_ = a.Like(ctx, args[0])

		case "comment":
			if len(args) == 0 {
				printlnFn("Usage: comment <post id>")
				continue
			}
			_ = a.Comment(ctx, args[0])

		case "share":
			if len(args) == 0 {
				printlnFn("Usage: share <post id>")
				continue
			}
			_ = a.Share(ctx, args[0])

		case "events", "e":
			category := "all"
			if len(args) > 0 {
				category = strings.Join(args, " ")
			}
			_ = a.Events(ctx, category)

		case "rsvp":
			if len(args) == 0 {
				printlnFn("Usage: rsvp <event id>")
				continue
			}
			_ = a.RSVP(ctx, args[0])

		case "profile":
			_ = a.ShowProfile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "stats":
			_ = a.ShowStats(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "sync":
			_ = a.Sync(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
