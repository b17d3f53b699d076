package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Feed(ctx context.Context) error
	Search(ctx context.Context) error
	Post(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Messages(ctx context.Context) error
	Open(ctx context.Context, args []string) error
	Send(ctx context.Context, args []string) error
	Avatar(ctx context.Context, args []string) error
}

// publicCommands run without a session; every other command requires one.
var publicCommands = map[string]bool{
	"help": true, "register": true, "login": true, "forgot": true, "exit": true, "quit": true,
}

// runREPL reads commands from reader and dispatches them to a until EOF,
// "exit"/"quit" or the end of ctx.
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                 show available commands
//	  - register             create an account
//	  - login                authenticate, optionally remembering the session
//	  - forgot               request a password reset
//	  - exit | quit          leave the program
//
//	Logged in:
//	  - feed                 list all listings, newest first
//	  - search               filter listings by text, status, item and location
//	  - post                 create a lost or found listing
//	  - show <id>            show one listing
//	  - messages             list conversations
//	  - open <id>            show a conversation
//	  - send <id> [text]     send a message
//	  - avatar [path]        upload or inspect the profile picture
//	  - passwd               change the password
//	  - whoami               show the session
//	  - logout               end the session
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("b2m%s> ", withSpace(statusFn())))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !publicCommands[cmd] && !a.isLoggedIn() {
			if isKnownCommand(cmd) {
				printlnFn("Please log in first.")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: feed, search, post, show <id>, messages, open <id>, send <id> [text], avatar [path], passwd, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "forgot":
			_ = a.ForgotPassword(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "passwd":
			_ = a.ChangePassword(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "feed":
			_ = a.Feed(ctx)
		case "search":
			_ = a.Search(ctx)
		case "post":
			_ = a.Post(ctx)
		case "show":
			_ = a.Show(ctx, args)
		case "messages":
			_ = a.Messages(ctx)
		case "open":
			_ = a.Open(ctx, args)
		case "send":
			_ = a.Send(ctx, args)
		case "avatar":
			_ = a.Avatar(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func isKnownCommand(cmd string) bool {
	switch cmd {
	case "logout", "passwd", "whoami", "feed", "search", "post", "show", "messages", "open", "send", "avatar":
		return true
	}
	return false
}

func withSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
