package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL-level output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Guest(ctx context.Context) error
	Logout(ctx context.Context) error
	Analyze(ctx context.Context, args []string) error
	Status(ctx context.Context) error
	CancelAnalysis(ctx context.Context) error
	Save(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Note(ctx context.Context, args []string) error
	Timeline(ctx context.Context, args []string) error
	Watch(ctx context.Context, args []string) error
	Rank(ctx context.Context) error
	Leaderboard(ctx context.Context, args []string) error
	Settings(ctx context.Context, args []string) error
	Chat(ctx context.Context) error
}

const (
	helpGuest = "Available commands: register, login, guest, exit"
	helpUser  = "Available commands: analyze <photo>, status, cancel, save, (l)ist [page], show <id> [photo], " +
		"note <id> [photo], timeline <id>, watch <id>, rank, leaderboard [n], settings [key=value ...], chat, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a
// until EOF, "exit" or "quit".
//
// Commands other than help, register, login, guest and exit need a signed-in
// account. Errors returned by handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("pv %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "register":
			report(a.Register(ctx))
			continue
		case "login":
			report(a.Login(ctx))
			continue
		case "guest":
			report(a.Guest(ctx))
			continue
		}

		if !a.isLoggedIn() {
			if isKnownCommand(cmd) {
				printlnFn("Please register, login or continue as guest first")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "analyze":
			report(a.Analyze(ctx, args))
		case "status":
			report(a.Status(ctx))
		case "cancel":
			report(a.CancelAnalysis(ctx))
		case "save":
			report(a.Save(ctx))
		case "l", "list":
			report(a.List(ctx, args))
		case "show":
			report(a.Show(ctx, args))
		case "note":
			report(a.Note(ctx, args))
		case "timeline":
			report(a.Timeline(ctx, args))
		case "watch":
			report(a.Watch(ctx, args))
		case "rank":
			report(a.Rank(ctx))
		case "leaderboard":
			report(a.Leaderboard(ctx, args))
		case "settings":
			report(a.Settings(ctx, args))
		case "chat":
			report(a.Chat(ctx))
		case "logout":
			report(a.Logout(ctx))
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func isKnownCommand(cmd string) bool {
	switch cmd {
	case "analyze", "status", "cancel", "save", "l", "list", "show", "note", "timeline",
		"watch", "rank", "leaderboard", "settings", "chat", "logout":
		return true
	}
	return false
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", describeError(err))
	}
}
