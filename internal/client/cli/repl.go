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
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Books(ctx context.Context) error
	SearchBooks(ctx context.Context, query string) error
	Borrow(ctx context.Context, args []string) error
	Loans(ctx context.Context) error
	ReturnLoan(ctx context.Context, args []string) error
	ReadingList(ctx context.Context) error
	AddNote(ctx context.Context, args []string) error
	EditNote(ctx context.Context, args []string) error
	RemoveEntry(ctx context.Context, args []string) error
	Admin(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the BookNest CLI.
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
//	  - help             — show available commands
//	  - register         — create an account
//	  - login            — authenticate
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - books            — list the catalog
//	  - search <query>   — filter the catalog locally
//	  - borrow <book>    — borrow a book
//	  - loans            — list my loans
//	  - return <loan>    — return a loan
//	  - readlist         — show the reading list
//	  - addnote <book>   — add a book with a note
//	  - editnote <entry> — edit an entry's note
//	  - remove <entry>   — remove an entry (asks for confirmation)
//	  - whoami           — show the current session
//	  - profile          — update email or password
//	  - admin <sub>      — back-office commands (admins)
//	  - logout           — log out
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("booknest %s> ", statusFn()))
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
			printHelp(a)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "b", "books":
			_ = a.Books(ctx)

		case "search":
			_ = a.SearchBooks(ctx, strings.Join(args, " "))

		case "borrow":
			_ = a.Borrow(ctx, args)

		case "loans":
			_ = a.Loans(ctx)

		case "return":
			_ = a.ReturnLoan(ctx, args)

		case "readlist":
			_ = a.ReadingList(ctx)

		case "addnote":
			_ = a.AddNote(ctx, args)

		case "editnote":
			_ = a.EditNote(ctx, args)

		case "remove":
			_ = a.RemoveEntry(ctx, args)

		case "admin":
			_ = a.Admin(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	if !a.isLoggedIn() {
		printlnFn("Available commands: register, login, exit")
		return
	}
	printlnFn("Available commands: (b)ooks, search, borrow, loans, return, readlist, addnote, editnote, remove, whoami, profile, logout, exit")
	if a.isAdmin() {
		printlnFn("Admin commands: admin users|books|loans, admin adduser|edituser|deluser, admin addbook|editbook|delbook, admin delloan")
	}
}
